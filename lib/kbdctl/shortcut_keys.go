package kbdctl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	qlog "github.com/modernopengl/quadview/lib/log"
	"github.com/modernopengl/quadview/lib/scene"
	"github.com/modernopengl/quadview/lib/window"
)

// SetupShortcutKeys binds F (toggle wireframe) and Ctrl+Shift+Q (quit).
// Escape is handled separately by window.ProcessInput every frame.
func SetupShortcutKeys(s *scene.Scene, w *window.Window) {
	w.SetKeyCallback(keyCallback(s))
}

func Poll() {
	glfw.PollEvents()
}

func keyCallback(s *scene.Scene) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		handleKey(s, key, action, mods)
	}
}

func handleKey(s *scene.Scene, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	logger := qlog.Module("kbdctl")

	if action == glfw.Release {
		if key == glfw.KeyQ &&
			mods&glfw.ModControl != 0 &&
			mods&glfw.ModShift != 0 {
			logger.Info("told to quit, exiting")
			s.RequestShutdown("ctrl+shift+q")
		}
	}
	if action == glfw.Press {
		if key == glfw.KeyF {
			mode := s.TogglePolygonMode()
			logger.Info(fmt.Sprintf("polygon mode set to %s", mode))
		}
	}
}
