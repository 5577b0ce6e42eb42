package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// LogHandler renders records as coloured single lines. Attributes are
// collected by an inner JSON handler so that groups and WithAttrs behave
// exactly like they do for slog's own handlers.
type LogHandler struct {
	subHandler  slog.Handler
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex
	out         io.Writer
}

const (
	reset = "\033[0m"

	cyan        = 36
	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
)

// keys the JSON sub-handler always emits and which get their own place in
// the rendered line
var builtinKeys = []string{slog.TimeKey, slog.LevelKey, slog.MessageKey, "module"}

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{subHandler: h.subHandler.WithAttrs(attrs), buffer: h.buffer, bufferMutex: h.bufferMutex, out: h.out}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{subHandler: h.subHandler.WithGroup(name), buffer: h.buffer, bufferMutex: h.bufferMutex, out: h.out}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch {
	case r.Level >= slog.LevelError:
		level = colorize(lightRed, level)
	case r.Level >= slog.LevelWarn:
		level = colorize(lightYellow, level)
	case r.Level >= slog.LevelInfo:
		level = colorize(cyan, level)
	default:
		level = colorize(darkGray, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	b.WriteString(level)
	if attrs["module"] != nil {
		b.WriteString(colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	b.WriteString(r.Message)

	var extra []string
	for k := range attrs {
		if !slices.Contains(builtinKeys, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	for _, k := range extra {
		b.WriteString(" ")
		b.WriteString(colorize(darkGray, fmt.Sprintf("%s=%v", k, attrs[k])))
	}
	b.WriteString("\n")

	h.bufferMutex.Lock()
	defer h.bufferMutex.Unlock()
	_, err = io.WriteString(h.out, b.String())
	return err
}

func (h *LogHandler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	if out == nil {
		out = os.Stdout
	}
	b := &bytes.Buffer{}
	return &LogHandler{
		buffer: b,
		out:    out,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
	}
}

// ParseLevel maps the config names onto slog levels.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Setup installs the coloured handler as the process-wide slog default.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}

// Module returns a logger tagged with the given module name.
func Module(name string) *slog.Logger {
	return slog.Default().With(slog.String("module", name))
}
