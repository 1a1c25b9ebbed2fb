package window

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"

	"github.com/modernopengl/quadview/lib/config"
	qlog "github.com/modernopengl/quadview/lib/log"
)

type ResizeFunc func(width, height int)

// Window wraps the GLFW window the quad is drawn into. It is stored in
// the GLFW user pointer so callbacks can find their way back to it.
type Window struct {
	*glfw.Window

	cfg      *config.WindowCfg
	onResize []ResizeFunc
	self     unsafe.Pointer
	logger   *slog.Logger
}

// InitGLFW initialises the windowing library. Failure is logged but
// reported to the caller, who decides whether to carry on.
func InitGLFW() error {
	logger := qlog.Module("window")
	if err := glfw.Init(); err != nil {
		logger.Error("Unable to initialize GLFW", "err", err)
		return fmt.Errorf("could not initialise glfw: %w", err)
	}
	logger.Info("GLFW initialized successfully")
	return nil
}

func Terminate() {
	glfw.Terminate()
}

// New creates the window and makes its context current on the calling
// thread, which must be the locked main thread.
func New(cfg *config.WindowCfg) (*Window, error) {
	w := &Window{
		cfg:    cfg,
		logger: qlog.Module("window"),
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Resizable != nil && !*cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		w.logger.Error("Failed to create GLFW window", "err", err)
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	w.Window = window

	w.MakeContextCurrent()

	w.self = gopointer.Save(w)
	w.SetUserPointer(w.self)
	w.SetFramebufferSizeCallback(framebufferSizeCallback)

	return w, nil
}

// FromGLFW recovers the Window a GLFW callback was invoked for.
func FromGLFW(gw *glfw.Window) *Window {
	ptr := gw.GetUserPointer()
	if ptr == nil {
		return nil
	}
	w, _ := gopointer.Restore(ptr).(*Window)
	return w
}

func framebufferSizeCallback(gw *glfw.Window, width, height int) {
	w := FromGLFW(gw)
	if w == nil {
		return
	}
	w.resized(width, height)
}

// OnResize registers fn to run, on the main thread, whenever the
// framebuffer changes size.
func (w *Window) OnResize(fn ResizeFunc) {
	w.onResize = append(w.onResize, fn)
}

func (w *Window) resized(width, height int) {
	w.logger.Debug(fmt.Sprintf("Framebuffer resized to %dx%d", width, height))
	for _, fn := range w.onResize {
		fn(width, height)
	}
}

// ProcessInput closes the window while Escape is held down.
func (w *Window) ProcessInput() {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

// Destroy releases the user pointer entry and the GLFW window.
func (w *Window) Destroy() {
	if w.self != nil {
		gopointer.Unref(w.self)
		w.self = nil
	}
	if w.Window != nil {
		w.Window.Destroy()
		w.Window = nil
	}
}
