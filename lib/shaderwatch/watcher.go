package shaderwatch

import (
	"fmt"
	"log/slog"

	"github.com/modernopengl/quadview/lib/config"
	qlog "github.com/modernopengl/quadview/lib/log"
	"github.com/modernopengl/quadview/lib/rendering/shaders"
	"github.com/modernopengl/quadview/lib/scene"
)

// Watcher reloads shader override files when they change and queues the
// new sources on the scene. Compilation happens later, on the GL thread.
type Watcher struct {
	cfg    *config.ShadersCfg
	data   *shaders.ShaderData
	scene  *scene.Scene
	logger *slog.Logger
}

func New(cfg *config.ShadersCfg, data *shaders.ShaderData, s *scene.Scene) *Watcher {
	return &Watcher{
		cfg:    cfg,
		data:   data,
		scene:  s,
		logger: qlog.Module("shaderwatch"),
	}
}

// Paths lists the files that are actually overridden.
func (w *Watcher) Paths() []string {
	var paths []string
	if w.cfg.Vertex != "" {
		paths = append(paths, string(w.cfg.Vertex))
	}
	if w.cfg.Fragment != "" {
		paths = append(paths, string(w.cfg.Fragment))
	}
	return paths
}

func (w *Watcher) Start() bool {
	if !w.cfg.Watch || len(w.Paths()) == 0 {
		return false
	}
	for _, path := range w.Paths() {
		go w.watch(path)
	}
	return true
}

func (w *Watcher) reload() error {
	src, err := shaders.LoadSources(string(w.cfg.Vertex), string(w.cfg.Fragment), w.data)
	if err != nil {
		return fmt.Errorf("could not reload shaders: %w", err)
	}
	w.scene.QueueShaderReload(scene.ShaderSources{
		Vertex:   src.Vertex,
		Fragment: src.Fragment,
	})
	return nil
}
