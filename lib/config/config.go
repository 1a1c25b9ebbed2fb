package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
	"github.com/modernopengl/quadview/lib/utils"
)

const (
	DefaultTitle  = "ModernOpenGL"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultClearColour is the teal-ish background the quad is drawn on.
var DefaultClearColour = utils.Colour{R: 0.2, G: 0.3, B: 0.3, A: 1.0}

type Config struct {
	Window      *WindowCfg
	ClearColour string `yaml:"clear_colour"`
	PolygonMode string `yaml:"polygon_mode"`
	Shaders     *ShadersCfg
	Api         *ApiCfg
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable *bool
}

// ShadersCfg optionally replaces the built-in GLSL with files on disk.
type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
	Watch    bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is what quadview runs with when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.Resizable == nil {
		resizable := true
		c.Window.Resizable = &resizable
	}
	if c.PolygonMode == "" {
		c.PolygonMode = renderconsts.Line.String()
	}
}

func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.ClearColour != "" && !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if _, err := renderconsts.ParsePolygonMode(c.PolygonMode); err != nil {
		return err
	}
	if c.Shaders != nil {
		if err := c.Shaders.Validate(); err != nil {
			return fmt.Errorf("shaders are invalid: %w", err)
		}
	}
	if c.Api != nil {
		if err := c.Api.Validate(); err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	return nil
}

// Background returns the clear colour, falling back to DefaultClearColour.
func (c *Config) Background() utils.Colour {
	if c.ClearColour == "" {
		return DefaultClearColour
	}
	colour, err := utils.ColourParse(c.ClearColour)
	if err != nil {
		return DefaultClearColour
	}
	return colour
}

func (c *Config) Mode() renderconsts.PolygonMode {
	mode, err := renderconsts.ParsePolygonMode(c.PolygonMode)
	if err != nil {
		return renderconsts.Line
	}
	return mode
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d, resizable: %t)\n", c.Window.Title, c.Window.Width, c.Window.Height, *c.Window.Resizable))

	b.WriteString("\nRendering:\n")
	b.WriteString(fmt.Sprintf("  clear colour: %s\n", c.Background()))
	b.WriteString(fmt.Sprintf("  polygon mode: %s\n", c.Mode()))

	b.WriteString("\nShaders:\n")
	if c.Shaders == nil {
		b.WriteString("  built-in\n")
	} else {
		b.WriteString(fmt.Sprintf("  vertex: %s\n", c.Shaders.VertexPath()))
		b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.FragmentPath()))
		b.WriteString(fmt.Sprintf("  watch: %t\n", c.Shaders.Watch))
	}

	b.WriteString("\nApi:\n")
	if c.Api == nil {
		b.WriteString("  disabled\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s (profiler: %t)\n", c.Api.Bind, c.Api.EnableProfiler))
	}

	return b.String()
}

func (s *ShadersCfg) Validate() error {
	if s.Vertex == "" && s.Fragment == "" {
		return fmt.Errorf("at least one of vertex or fragment must be specified")
	}
	for _, p := range []CfgPath{s.Vertex, s.Fragment} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(string(p)); err != nil {
			return fmt.Errorf("shader file %s is not usable: %w", p, err)
		}
	}
	return nil
}

func (s *ShadersCfg) VertexPath() string {
	if s.Vertex == "" {
		return "built-in"
	}
	return string(s.Vertex)
}

func (s *ShadersCfg) FragmentPath() string {
	if s.Fragment == "" {
		return "built-in"
	}
	return string(s.Fragment)
}

func (s *ApiCfg) Validate() error {
	if s.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}
