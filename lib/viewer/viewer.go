package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/modernopengl/quadview/lib/api"
	"github.com/modernopengl/quadview/lib/config"
	"github.com/modernopengl/quadview/lib/geometry"
	"github.com/modernopengl/quadview/lib/kbdctl"
	qlog "github.com/modernopengl/quadview/lib/log"
	"github.com/modernopengl/quadview/lib/metrics"
	"github.com/modernopengl/quadview/lib/rendering"
	"github.com/modernopengl/quadview/lib/rendering/shaders"
	"github.com/modernopengl/quadview/lib/scene"
	"github.com/modernopengl/quadview/lib/shaderwatch"
	"github.com/modernopengl/quadview/lib/stats"
	"github.com/modernopengl/quadview/lib/utils"
	"github.com/modernopengl/quadview/lib/window"
)

const (
	ExitOK      = 0
	ExitFailure = -1
)

var (
	initGLFW      = window.InitGLFW
	terminateGLFW = window.Terminate
)

// MakeWindowAndRender sets everything up and runs the render loop until
// the window is closed. It must be called from the locked main thread and
// returns the process exit code.
func MakeWindowAndRender(cfg *config.Config) int {
	logger := qlog.Module("viewer")

	// every later glfw call panics without a successful init
	if err := initGLFW(); err != nil {
		return ExitFailure
	}
	defer terminateGLFW()

	w, err := window.New(cfg.Window)
	if err != nil {
		return ExitFailure
	}
	defer w.Destroy()

	err = rendering.Init()
	if err != nil {
		logger.Error("could not initialise renderer", "err", err)
		return ExitFailure
	}

	fbWidth, fbHeight := w.GetFramebufferSize()
	rendering.SetViewport(fbWidth, fbHeight)

	s := scene.New(cfg.Mode(), fbWidth, fbHeight)
	st := stats.New()
	st.SetViewport(fbWidth, fbHeight)

	w.OnResize(func(width, height int) {
		rendering.SetViewport(width, height)
		metrics.ViewportResizes.Inc()
		st.SetViewport(width, height)
		s.Resize(width, height)
	})
	kbdctl.SetupShortcutKeys(s, w)
	stopSignals := s.ShutdownOnSignals()
	defer stopSignals()

	shaderData := shaders.DefaultShaderData()
	var vertexPath, fragmentPath string
	if cfg.Shaders != nil {
		vertexPath = string(cfg.Shaders.Vertex)
		fragmentPath = string(cfg.Shaders.Fragment)
	}
	src, err := shaders.LoadSources(vertexPath, fragmentPath, shaderData)
	if err != nil {
		logger.Error("could not load shaders", "err", err)
		return ExitFailure
	}
	program, err := shaders.BuildGLProgram(src)
	if err != nil {
		logger.Error("could not init GL program", "err", err)
		return ExitFailure
	}

	mesh := geometry.Quad()
	if err := mesh.Validate(); err != nil {
		logger.Error("invalid mesh", "err", err)
		return ExitFailure
	}
	glvars := rendering.NewGLVars(program, mesh, cfg.Background())
	glvars.Start()

	if cfg.Shaders != nil {
		shaderwatch.New(cfg.Shaders, shaderData, s).Start()
	}

	theApi := api.ServeInBackground(s, st, cfg.Api)
	if theApi != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = theApi.Shutdown(ctx)
		}()
	}

	var deltaTimer utils.DeltaTimer
	for !w.ShouldClose() && !s.ShutdownRequested() {
		dt := deltaTimer.Next()
		metrics.FrameTime.Observe(dt.Seconds())

		if mode, changed := s.TakePolygonModeChange(); changed {
			glvars.SetPolygonMode(mode)
			st.SetPolygonMode(mode.String())
		}
		if pending, ok := s.TakeShaderReload(); ok {
			reloadProgram(glvars, s, pending)
		}

		glvars.StartFrame()
		w.ProcessInput()
		glvars.Draw()
		w.SwapBuffers()

		// Maintenance
		metrics.FramesRendered.Inc()
		st.Update()
		kbdctl.Poll()
	}

	s.RequestShutdown("window closed")
	logger.Info(fmt.Sprintf("rendered %d frames, exiting", st.Snapshot().Frames))
	return ExitOK
}

// reloadProgram swaps in a freshly built program. The old one stays in
// use when the new sources fail to link.
func reloadProgram(glvars *rendering.GLVars, s *scene.Scene, pending scene.ShaderSources) {
	logger := qlog.Module("viewer")

	program, err := shaders.BuildGLProgram(&shaders.Sources{
		Vertex:   pending.Vertex,
		Fragment: pending.Fragment,
	})
	if err != nil {
		logger.Warn("keeping previous shader program", "err", err)
		s.ShadersReloaded(err)
		return
	}
	glvars.SwapProgram(program)
	logger.Info("shader program reloaded")
	s.ShadersReloaded(nil)
}
