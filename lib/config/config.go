package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/xes-gl/xes/lib/log"
	"github.com/xes-gl/xes/lib/shaderfile"
	"github.com/xes-gl/xes/lib/utils"
)

const (
	MeshQuad     = "quad"
	MeshTriangle = "triangle"
)

type Config struct {
	Window      WindowCfg `yaml:"window" json:"window"`
	GL          GLCfg     `yaml:"gl" json:"gl"`
	Shader      ShaderCfg `yaml:"shader" json:"shader"`
	Mesh        string    `yaml:"mesh" json:"mesh"`
	ClearColour string    `yaml:"clear_colour" json:"clear_colour"`
	LogLevel    string    `yaml:"log_level" json:"log_level"`
	Api         *ApiCfg   `yaml:"api" json:"api,omitempty"`
}

type WindowCfg struct {
	Title     string `yaml:"title" json:"title"`
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	Resizable bool   `yaml:"resizable" json:"resizable"`
	VSync     bool   `yaml:"vsync" json:"vsync"`
}

// GLCfg selects the requested context version. The profile is always core.
type GLCfg struct {
	Major int `yaml:"major" json:"major"`
	Minor int `yaml:"minor" json:"minor"`
}

type ShaderCfg struct {
	Path     CfgPath `yaml:"path" json:"path"`
	Sentinel string  `yaml:"sentinel" json:"sentinel"`
	Watch    bool    `yaml:"watch" json:"watch"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind" json:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler" json:"enable_profiler"`
}

// Default is what the demo runs with when no config file is given.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Title:  "Xes",
			Width:  800,
			Height: 450,
		},
		GL: GLCfg{
			Major: 3,
			Minor: 3,
		},
		Shader: ShaderCfg{
			Sentinel: shaderfile.Sentinel,
		},
		Mesh:        MeshQuad,
		ClearColour: "#000000ff",
		LogLevel:    "info",
	}
}

// Parse reads filename, fills unset fields from Default() and validates the
// result. An empty filename gives the defaults.
func Parse(filename string) (*Config, error) {
	if filename == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}
	cfg.fillDefaults()
	cfg.Shader.Path = cfg.Shader.Path.Resolve(filepath.Dir(absFilename))

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.Width == 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = d.Window.Height
	}
	if c.GL.Major == 0 {
		c.GL = d.GL
	}
	if c.Shader.Sentinel == "" {
		c.Shader.Sentinel = d.Shader.Sentinel
	}
	if c.Mesh == "" {
		c.Mesh = d.Mesh
	}
	if c.ClearColour == "" {
		c.ClearColour = d.ClearColour
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if !c.GL.Supported() {
		return fmt.Errorf("OpenGL %d.%d core is not supported, use 3.3 or 4.0 to 4.6", c.GL.Major, c.GL.Minor)
	}
	switch c.Mesh {
	case MeshQuad, MeshTriangle:
	default:
		return fmt.Errorf("unknown mesh %q, expected %s or %s", c.Mesh, MeshQuad, MeshTriangle)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Shader.Validate(); err != nil {
		return fmt.Errorf("shader is invalid: %w", err)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api needs a bind address")
	}
	return nil
}

func (g GLCfg) Supported() bool {
	switch g.Major {
	case 3:
		return g.Minor == 3
	case 4:
		return g.Minor >= 0 && g.Minor <= 6
	}
	return false
}

func (s *ShaderCfg) Validate() error {
	if s.Sentinel == "" {
		return fmt.Errorf("sentinel must not be empty")
	}
	if strings.ContainsAny(s.Sentinel, "\r\n") {
		return fmt.Errorf("sentinel must fit on one line")
	}
	if s.Watch && s.Path == "" {
		return fmt.Errorf("cannot watch a shader without path")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Window:\n  %q %dx%d", c.Window.Title, c.Window.Width, c.Window.Height)
	if c.Window.Resizable {
		b.WriteString(" resizable")
	}
	if c.Window.VSync {
		b.WriteString(" vsync")
	}
	fmt.Fprintf(&b, "\n  OpenGL %d.%d core\n", c.GL.Major, c.GL.Minor)

	b.WriteString("\nShader:\n")
	if c.Shader.Path == "" {
		b.WriteString("  none (clear only)\n")
	} else {
		fmt.Fprintf(&b, "  %s (sentinel %q", c.Shader.Path, c.Shader.Sentinel)
		if c.Shader.Watch {
			b.WriteString(", watched")
		}
		b.WriteString(")\n")
	}

	fmt.Fprintf(&b, "\nMesh:\n  %s\n", c.Mesh)
	fmt.Fprintf(&b, "\nClear colour:\n  %s\n", c.ClearColour)

	if c.Api != nil {
		fmt.Fprintf(&b, "\nApi:\n  %s\n", c.Api.Bind)
	}
	return b.String()
}
