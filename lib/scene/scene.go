package scene

import (
	"sync"

	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
)

// Scene is the state shared between the render loop, which owns the GL
// context, and everything else that wants to influence it (keyboard,
// API, shader watcher, signals). The render loop picks up changes once
// per frame.
type Scene struct {
	mu sync.Mutex

	shutdownRequested bool
	polygonMode       renderconsts.PolygonMode
	modeDirty         bool
	viewportWidth     int
	viewportHeight    int
	pendingShaders    *ShaderSources

	listenerMu sync.Mutex
	listener   map[string][]*listenerQueue
}

// ShaderSources is a pair of GLSL sources waiting to be compiled.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

func New(mode renderconsts.PolygonMode, width, height int) *Scene {
	return &Scene{
		polygonMode:    mode,
		modeDirty:      true,
		viewportWidth:  width,
		viewportHeight: height,
		listener:       make(map[string][]*listenerQueue),
	}
}

func (s *Scene) RequestShutdown(reason string) {
	s.mu.Lock()
	already := s.shutdownRequested
	s.shutdownRequested = true
	s.mu.Unlock()

	if !already {
		s.invoke(EventShutdown, EventDataShutdown{Event: EventShutdown, Reason: reason})
	}
}

func (s *Scene) ShutdownRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownRequested
}

func (s *Scene) PolygonMode() renderconsts.PolygonMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polygonMode
}

func (s *Scene) SetPolygonMode(mode renderconsts.PolygonMode) {
	s.mu.Lock()
	changed := s.polygonMode != mode
	s.polygonMode = mode
	s.modeDirty = s.modeDirty || changed
	s.mu.Unlock()

	if changed {
		s.invoke(EventPolygonMode, EventDataPolygonMode{Event: EventPolygonMode, Mode: mode.String()})
	}
}

func (s *Scene) TogglePolygonMode() renderconsts.PolygonMode {
	mode := s.PolygonMode().Toggle()
	s.SetPolygonMode(mode)
	return mode
}

// TakePolygonModeChange reports the polygon mode if it changed since the
// last call. The first call always reports the initial mode.
func (s *Scene) TakePolygonModeChange() (renderconsts.PolygonMode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dirty := s.modeDirty
	s.modeDirty = false
	return s.polygonMode, dirty
}

func (s *Scene) Resize(width, height int) {
	s.mu.Lock()
	s.viewportWidth = width
	s.viewportHeight = height
	s.mu.Unlock()

	s.invoke(EventResize, EventDataResize{Event: EventResize, Width: width, Height: height})
}

func (s *Scene) Viewport() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewportWidth, s.viewportHeight
}

// QueueShaderReload hands new sources to the render loop. A newer queued
// pair replaces an older one that was not picked up yet.
func (s *Scene) QueueShaderReload(src ShaderSources) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingShaders = &src
}

func (s *Scene) TakeShaderReload() (ShaderSources, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingShaders == nil {
		return ShaderSources{}, false
	}
	src := *s.pendingShaders
	s.pendingShaders = nil
	return src, true
}

func (s *Scene) ShadersReloaded(err error) {
	data := EventDataShaders{Event: EventShadersReloaded, OK: err == nil}
	if err != nil {
		data.Error = err.Error()
	}
	s.invoke(EventShadersReloaded, data)
}
