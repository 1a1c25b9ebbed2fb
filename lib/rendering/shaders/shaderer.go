package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/modernopengl/quadview/lib/geometry"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexShaderName   = "quad.vert"
	FragmentShaderName = "quad.frag"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion      string
	PositionLocation uint32
	ColourLocation   uint32
}

// DefaultShaderData matches the 3.3 core context and the attribute
// layout of geometry.Quad.
func DefaultShaderData() *ShaderData {
	attrs := geometry.Attributes()
	return &ShaderData{
		GLSLVersion:      "330 core",
		PositionLocation: attrs[0].Location,
		ColourLocation:   attrs[1].Location,
	}
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// Sources is a vertex and fragment shader pair ready to be compiled.
type Sources struct {
	Vertex   string
	Fragment string
}

// LoadSources renders the built-in shaders, replacing either stage with
// the contents of a file when its path is non-empty. Files are used
// verbatim, not as templates.
func LoadSources(vertexPath, fragmentPath string, data *ShaderData) (*Sources, error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return nil, fmt.Errorf("could not get shaders: %w", err)
	}

	src := &Sources{}
	src.Vertex, err = loadStage(shaderer, VertexShaderName, vertexPath, data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}
	src.Fragment, err = loadStage(shaderer, FragmentShaderName, fragmentPath, data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}
	return src, nil
}

func loadStage(shaderer *Shaderer, name, path string, data *ShaderData) (string, error) {
	if path == "" {
		return shaderer.GetShaderSource(name, data)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
