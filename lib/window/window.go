package window

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"
	"github.com/xes-gl/xes/lib/config"
	"github.com/xes-gl/xes/lib/events"
	"github.com/xes-gl/xes/lib/rendering"
)

// Window owns the GLFW window and its GL context. Create it, use it and
// destroy it on the main OS thread.
type Window struct {
	GLFW  *glfw.Window
	Title string

	queue *events.Queue
	self  unsafe.Pointer
	log   *slog.Logger

	// KeyHandler translates a key callback into events. It is swapped out
	// by kbdctl.
	KeyHandler func(w *Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
}

// New initialises GLFW, opens the window, makes its context current and
// loads GL. Every step that fails is logged and returned; the window is
// cleaned up again in that case.
func New(cfg *config.Config, queue *events.Queue) (*Window, error) {
	w := &Window{
		Title: cfg.Window.Title,
		queue: queue,
		log:   slog.Default().With(slog.String("module", "window")),
	}

	w.log.Debug("initializing window")
	if err := glfw.Init(); err != nil {
		return nil, w.fail("failed to initialize glfw", err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Window.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, w.fail("unable to create window", err)
	}
	w.GLFW = win

	win.MakeContextCurrent()

	swap := 0
	if cfg.Window.VSync {
		swap = 1
	}
	w.setSwapInterval(swap)

	if err := rendering.Init(); err != nil {
		w.Destroy()
		return nil, w.fail("unable to initialize OpenGL", err)
	}

	w.self = gopointer.Save(w)
	win.SetUserPointer(w.self)
	win.SetKeyCallback(keyCallback)
	win.SetFramebufferSizeCallback(framebufferSizeCallback)
	win.SetCloseCallback(closeCallback)

	fbw, fbh := win.GetFramebufferSize()
	w.log.Info(fmt.Sprintf("created %dx%d window %q (framebuffer %dx%d, OpenGL %d.%d core)",
		cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, fbw, fbh, cfg.GL.Major, cfg.GL.Minor))
	return w, nil
}

// setSwapInterval logs a platform that refuses the interval and carries on.
// glfw.SwapInterval reports that by panicking.
func (w *Window) setSwapInterval(interval int) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Warn(fmt.Sprintf("unable to set swap interval %d: %v. Continuing", interval, r))
		}
	}()
	glfw.SwapInterval(interval)
	w.log.Debug(fmt.Sprintf("swap interval %d", interval))
}

func (w *Window) fail(msg string, err error) error {
	err = fmt.Errorf("%s: %w", msg, err)
	w.log.Error(err.Error())
	return err
}

// Push queues an event for the frame loop.
func (w *Window) Push(ev events.Event) {
	w.queue.Push(ev)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Present() {
	w.GLFW.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.GLFW.GetFramebufferSize()
}

// Destroy releases the window and shuts GLFW down.
func (w *Window) Destroy() {
	if w.self != nil {
		gopointer.Unref(w.self)
		w.self = nil
	}
	if w.GLFW != nil {
		w.GLFW.Destroy()
		w.GLFW = nil
	}
	glfw.Terminate()
}

// fromGLFW recovers the owning Window inside a GLFW callback.
func fromGLFW(win *glfw.Window) *Window {
	ptr := win.GetUserPointer()
	if ptr == nil {
		return nil
	}
	w, _ := gopointer.Restore(ptr).(*Window)
	return w
}

func keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	w := fromGLFW(win)
	if w == nil {
		return
	}
	if w.KeyHandler != nil {
		w.KeyHandler(w, key, scancode, action, mods)
		return
	}
	if action == glfw.Press {
		w.Push(events.Event{Kind: events.KeyDown, Key: int(key), KeyName: KeyName(key, scancode)})
	}
}

func framebufferSizeCallback(win *glfw.Window, width, height int) {
	if w := fromGLFW(win); w != nil {
		w.Push(events.Event{Kind: events.Resize, Width: width, Height: height})
	}
}

func closeCallback(win *glfw.Window) {
	if w := fromGLFW(win); w != nil {
		w.Push(events.Event{Kind: events.Quit})
	}
}

// KeyName gives a printable name for key, falling back to the numeric code
// for keys GLFW has no layout name for.
func KeyName(key glfw.Key, scancode int) string {
	if name := glfw.GetKeyName(key, scancode); name != "" {
		return name
	}
	if name, ok := specialKeys[key]; ok {
		return name
	}
	return fmt.Sprintf("key %d", int(key))
}

var specialKeys = map[glfw.Key]string{
	glfw.KeySpace:     "space",
	glfw.KeyEscape:    "escape",
	glfw.KeyEnter:     "enter",
	glfw.KeyTab:       "tab",
	glfw.KeyBackspace: "backspace",
	glfw.KeyLeft:      "left",
	glfw.KeyRight:     "right",
	glfw.KeyUp:        "up",
	glfw.KeyDown:      "down",
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
