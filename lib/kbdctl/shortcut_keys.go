package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xes-gl/xes/lib/events"
	"github.com/xes-gl/xes/lib/window"
)

// SetupShortcutKeys makes Escape and Ctrl+Shift+Q quit and Ctrl+R reload
// the shader. Every key press is also reported as a key-down event.
func SetupShortcutKeys(w *window.Window) {
	w.KeyHandler = keyCallback
}

func keyCallback(w *window.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		if key == glfw.KeyQ &&
			mods&glfw.ModControl != 0 &&
			mods&glfw.ModShift != 0 {
			slog.Info("told to quit by keyboard shortcut", slog.String("module", "kbdctl"))
			w.Push(events.Event{Kind: events.Quit})
		}
		return
	}
	if action != glfw.Press {
		return
	}

	w.Push(events.Event{Kind: events.KeyDown, Key: int(key), KeyName: window.KeyName(key, scancode)})

	switch {
	case key == glfw.KeyEscape:
		w.Push(events.Event{Kind: events.Quit})
	case key == glfw.KeyR && mods&glfw.ModControl != 0:
		w.Push(events.Event{Kind: events.Reload})
	}
}
