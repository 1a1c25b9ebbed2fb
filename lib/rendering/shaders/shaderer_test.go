package shaders

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestTemplatesRender(t *testing.T) {
	s, err := NewShaderer()
	if err != nil {
		t.Fatal(err)
	}
	names := s.TemplateNames()
	for _, name := range []string{VertexShaderName, FragmentShaderName} {
		if !slices.Contains(names, name) {
			t.Errorf("template %s missing from %v", name, names)
		}
	}

	vert, err := s.GetShaderSource(VertexShaderName, DefaultShaderData())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"#version 330 core",
		"layout (location = 0) in vec3 aPos;",
		"layout (location = 1) in vec3 aColor;",
		"myColor = aColor;",
	} {
		if !strings.Contains(vert, want) {
			t.Errorf("vertex shader does not contain %q:\n%s", want, vert)
		}
	}

	frag, err := s.GetShaderSource(FragmentShaderName, DefaultShaderData())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(frag, "#version 330 core\n") {
		t.Errorf("version directive must come first:\n%s", frag)
	}
	if !strings.Contains(frag, "FragColor = vec4(myColor, 1.0);") {
		t.Errorf("fragment shader does not pass colour through:\n%s", frag)
	}
}

func TestUnknownTemplate(t *testing.T) {
	s, err := NewShaderer()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetShaderSource("nope.geom", DefaultShaderData()); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestLoadSourcesOverride(t *testing.T) {
	dir := t.TempDir()
	fragPath := filepath.Join(dir, "broken.frag")
	if err := os.WriteFile(fragPath, []byte("this is not glsl"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := LoadSources("", fragPath, DefaultShaderData())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src.Vertex, "aPos") {
		t.Errorf("vertex shader should be the built-in one:\n%s", src.Vertex)
	}
	if src.Fragment != "this is not glsl" {
		t.Errorf("fragment shader should come from the file, got %q", src.Fragment)
	}

	if _, err := LoadSources(filepath.Join(dir, "missing.vert"), "", DefaultShaderData()); err == nil {
		t.Error("expected error for missing vertex file")
	}
}
