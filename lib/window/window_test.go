package window

import (
	"log/slog"
	"testing"
)

// Without glfw.Init the interval call fails, which glfw reports by panicking.
func TestSwapIntervalFailureIsNotFatal(t *testing.T) {
	w := &Window{log: slog.Default().With(slog.String("module", "window"))}
	w.setSwapInterval(1)
}
