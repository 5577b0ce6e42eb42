// Package frameloop runs the per-frame sequence: poll input, handle the
// queued events, draw and present.
package frameloop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xes-gl/xes/lib/events"
	"github.com/xes-gl/xes/lib/shaderfile"
	"github.com/xes-gl/xes/lib/stats"
	"github.com/xes-gl/xes/lib/utils"
)

// Surface is the window side of the loop.
type Surface interface {
	// PollEvents processes pending window system events without blocking.
	PollEvents()
	Present()
	FramebufferSize() (int, int)
}

// Renderer is the GL side of the loop.
type Renderer interface {
	Viewport(width, height int)
	DrawFrame()
	Reload() error
}

type EventListener func(loop *Loop, data interface{})

type EventDataResize struct {
	Event  string `json:"event"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type EventDataReload struct {
	Event string `json:"event"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

const (
	EventResize       = "resize"
	EventShaderReload = "shader-reload"
)

type Loop struct {
	Queue *events.Queue
	Stats *stats.Stats

	surface  Surface
	renderer Renderer

	shutdownRequested bool
	deltaTimer        utils.DeltaTimer

	listenerMu sync.Mutex
	listener   map[string][]EventListener

	log *slog.Logger
}

func New(surface Surface, renderer Renderer, queue *events.Queue, st *stats.Stats) *Loop {
	return &Loop{
		Queue:    queue,
		Stats:    st,
		surface:  surface,
		renderer: renderer,
		listener: make(map[string][]EventListener),
		log:      slog.Default().With(slog.String("module", "frameloop")),
	}
}

// RequestShutdown may be called from any goroutine. The frame in progress
// is finished before the loop returns.
func (l *Loop) RequestShutdown() {
	l.Queue.Push(events.Event{Kind: events.Quit})
}

// RequestReload may be called from any goroutine.
func (l *Loop) RequestReload() {
	l.Queue.Push(events.Event{Kind: events.Reload})
}

func (l *Loop) AddEventListener(event string, callback EventListener) {
	l.listenerMu.Lock()
	defer l.listenerMu.Unlock()
	l.listener[event] = append(l.listener[event], callback)
}

func (l *Loop) invoke(event string, data interface{}) {
	l.listenerMu.Lock()
	defer l.listenerMu.Unlock()
	for _, listener := range l.listener[event] {
		go listener(l, data)
	}
}

// Run blocks until a quit event arrives or ctx is done. It must be called
// on the thread that owns the GL context.
func (l *Loop) Run(ctx context.Context) {
	width, height := l.surface.FramebufferSize()
	l.resize(width, height)

	for !l.shutdownRequested {
		if ctx.Err() != nil {
			l.log.Info("context done, exiting")
			return
		}
		l.Frame()
	}
}

// Frame runs one iteration and reports whether the loop should go on.
func (l *Loop) Frame() bool {
	l.surface.PollEvents()
	for _, ev := range l.Queue.Drain() {
		l.handle(ev)
	}

	l.renderer.DrawFrame()
	l.surface.Present()
	l.Stats.Update(l.deltaTimer.Next())

	return !l.shutdownRequested
}

func (l *Loop) handle(ev events.Event) {
	switch ev.Kind {
	case events.Quit:
		l.log.Info("told to quit, exiting")
		l.shutdownRequested = true
	case events.KeyDown:
		l.log.Info(fmt.Sprintf("key down: %s", ev.KeyName), slog.Int("key", ev.Key))
	case events.Resize:
		// the event carries the size from the callback, but what counts is
		// the drawable size right now
		width, height := l.surface.FramebufferSize()
		l.resize(width, height)
	case events.Reload:
		l.reload()
	default:
		l.log.Warn(fmt.Sprintf("ignoring unknown event %s", ev))
	}
}

func (l *Loop) resize(width, height int) {
	l.renderer.Viewport(width, height)
	l.Stats.Resized(width, height)
	l.log.Debug(fmt.Sprintf("viewport set to %dx%d", width, height))
	l.invoke(EventResize, EventDataResize{Event: EventResize, Width: width, Height: height})
}

func (l *Loop) reload() {
	l.log.Info("reloading shader")
	err := l.renderer.Reload()
	if errors.Is(err, shaderfile.ErrNoShader) {
		l.log.Info("no shader file configured, nothing to reload")
		return
	}
	l.Stats.ShaderBuilt(err)

	data := EventDataReload{Event: EventShaderReload, OK: err == nil}
	if err != nil {
		data.Error = err.Error()
	}
	l.invoke(EventShaderReload, data)
}
