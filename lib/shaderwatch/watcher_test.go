package shaderwatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modernopengl/quadview/lib/config"
	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
	"github.com/modernopengl/quadview/lib/rendering/shaders"
	"github.com/modernopengl/quadview/lib/scene"
)

func TestReloadQueuesSources(t *testing.T) {
	dir := t.TempDir()
	fragPath := filepath.Join(dir, "quad.frag")
	if err := os.WriteFile(fragPath, []byte("#version 330 core\nvoid main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := scene.New(renderconsts.Line, 800, 600)
	w := New(&config.ShadersCfg{Fragment: config.CfgPath(fragPath)}, shaders.DefaultShaderData(), s)

	if paths := w.Paths(); len(paths) != 1 || paths[0] != fragPath {
		t.Fatalf("unexpected paths %v", paths)
	}
	if w.Start() {
		t.Fatal("watcher should not start when watch is off")
	}

	if err := w.reload(); err != nil {
		t.Fatal(err)
	}
	src, ok := s.TakeShaderReload()
	if !ok {
		t.Fatal("nothing queued")
	}
	if src.Fragment != "#version 330 core\nvoid main() {}\n" {
		t.Errorf("unexpected fragment source %q", src.Fragment)
	}
	if src.Vertex == "" {
		t.Error("vertex source should fall back to the built-in shader")
	}
}

func TestReloadMissingFile(t *testing.T) {
	s := scene.New(renderconsts.Line, 800, 600)
	w := New(&config.ShadersCfg{Vertex: config.CfgPath(filepath.Join(t.TempDir(), "gone.vert"))}, shaders.DefaultShaderData(), s)

	if err := w.reload(); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := s.TakeShaderReload(); ok {
		t.Error("nothing should be queued after a failed reload")
	}
}
