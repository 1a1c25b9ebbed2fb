package viewer

import (
	"errors"
	"testing"

	"github.com/modernopengl/quadview/lib/config"
)

func TestGLFWInitFailureExits(t *testing.T) {
	origInit, origTerminate := initGLFW, terminateGLFW
	defer func() {
		initGLFW, terminateGLFW = origInit, origTerminate
	}()

	terminated := false
	initGLFW = func() error {
		return errors.New("X11: The DISPLAY environment variable is missing")
	}
	terminateGLFW = func() {
		terminated = true
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("setup panicked instead of exiting: %v", r)
		}
	}()

	if code := MakeWindowAndRender(config.Default()); code != ExitFailure {
		t.Errorf("exit code %d, want %d", code, ExitFailure)
	}
	if terminated {
		t.Error("glfw was terminated without having been initialised")
	}
}
