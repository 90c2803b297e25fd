package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// maxConfigSize bounds the config file read
const maxConfigSize = 1 << 20

// Config is the full viewer configuration, loaded from YAML over Default().
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Camera  CameraConfig `yaml:"camera"`
	Input   InputConfig  `yaml:"input"`
	Sphere  SphereConfig `yaml:"sphere"`
	HUD     HUDConfig    `yaml:"hud"`
	Shaders ShaderConfig `yaml:"shaders"`
	Scene   SceneConfig  `yaml:"scene"`
}

type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	FPSLimit   int        `yaml:"fps_limit"` // 0 = unlimited
	VSync      bool       `yaml:"vsync"`
	Background [4]float32 `yaml:"background"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Zoom        float32    `yaml:"zoom"`
	MinZoom     float32    `yaml:"min_zoom"`
	MaxZoom     float32    `yaml:"max_zoom"`
	ZoomStep    float32    `yaml:"zoom_step"`
	MaxPitchDeg float32    `yaml:"max_pitch_deg"`
}

type InputConfig struct {
	// OrbitSpeed is radians of orbit per unit of NDC drag
	OrbitSpeed float32 `yaml:"orbit_speed"`
}

// SphereConfig sets the tessellation shared by every scene sphere.
type SphereConfig struct {
	Slices int `yaml:"slices"`
	Stacks int `yaml:"stacks"`
}

type HUDConfig struct {
	Enabled  bool       `yaml:"enabled"`
	FontSize int        `yaml:"font_size"`
	Color    [3]float32 `yaml:"color"`
}

// ShaderConfig selects where shader sources come from: empty uses the
// embedded sources, otherwise a directory path or an http(s) base URL.
type ShaderConfig struct {
	Source string `yaml:"source"`
}

type SceneConfig struct {
	Quads   []PrimitiveConfig `yaml:"quads"`
	Spheres []PrimitiveConfig `yaml:"spheres"`
	Points  []PointConfig     `yaml:"points"`
}

// PrimitiveConfig places a quad or sphere. Rotate is Euler degrees; a zero
// Scale means unit scale.
type PrimitiveConfig struct {
	Name      string     `yaml:"name"`
	Translate [3]float32 `yaml:"translate"`
	Rotate    [3]float32 `yaml:"rotate"`
	Scale     [3]float32 `yaml:"scale"`
	Color     [4]float32 `yaml:"color"`
}

type PointConfig struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Color    [4]float32 `yaml:"color"`
}

// Default returns the built-in demo configuration: three translucent axis
// planes, a translucent sphere and a few point markers.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      900,
			Height:     900,
			Title:      "planeviz",
			FPSLimit:   120,
			Background: [4]float32{0.12, 0.12, 0.14, 1},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0.3, -0.5},
			Near:        -10,
			Far:         10,
			Zoom:        1.5,
			MinZoom:     0.1,
			MaxZoom:     20,
			ZoomStep:    1.1,
			MaxPitchDeg: 85,
		},
		Input: InputConfig{OrbitSpeed: 2.0},
		Sphere: SphereConfig{
			Slices: 20,
			Stacks: 20,
		},
		HUD: HUDConfig{Enabled: true, FontSize: 18, Color: [3]float32{0.9, 0.9, 0.9}},
		Scene: SceneConfig{
			Quads: []PrimitiveConfig{
				{Name: "xy", Color: [4]float32{0.9, 0.2, 0.2, 0.35}},
				{Name: "xz", Rotate: [3]float32{90, 0, 0}, Color: [4]float32{0.2, 0.9, 0.2, 0.35}},
				{Name: "yz", Rotate: [3]float32{0, 90, 0}, Color: [4]float32{0.2, 0.3, 0.9, 0.35}},
			},
			Spheres: []PrimitiveConfig{
				{Name: "unit", Scale: [3]float32{0.5, 0.5, 0.5}, Color: [4]float32{0.95, 0.85, 0.3, 0.25}},
			},
			Points: []PointConfig{
				{Name: "origin", Color: [4]float32{1, 1, 1, 1}},
				{Name: "x", Position: [3]float32{1, 0, 0}, Color: [4]float32{1, 0.3, 0.3, 1}},
				{Name: "y", Position: [3]float32{0, 1, 0}, Color: [4]float32{0.3, 1, 0.3, 1}},
				{Name: "z", Position: [3]float32{0, 0, 1}, Color: [4]float32{0.3, 0.3, 1, 1}},
			},
		},
	}
}

// Load reads a YAML config file over Default(). An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInvalidConfig, path, info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("loaded config", "path", path, "quads", len(cfg.Scene.Quads),
		"spheres", len(cfg.Scene.Spheres), "points", len(cfg.Scene.Points))
	return cfg, nil
}

// Parse decodes YAML into cfg, normalizes it and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg.Validate()
}

func (c *Config) normalize() {
	for i := range c.Scene.Quads {
		c.Scene.Quads[i].normalize()
	}
	for i := range c.Scene.Spheres {
		c.Scene.Spheres[i].normalize()
	}
}

func (p *PrimitiveConfig) normalize() {
	if p.Scale == [3]float32{} {
		p.Scale = [3]float32{1, 1, 1}
	}
}

// Validate checks value ranges across all sections.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit %d is negative", ErrInvalidConfig, c.Window.FPSLimit)
	}

	cam := c.Camera
	if cam.Far <= cam.Near {
		return fmt.Errorf("%w: camera far (%v) must exceed near (%v)", ErrInvalidConfig, cam.Far, cam.Near)
	}
	if cam.Zoom <= 0 || cam.MinZoom <= 0 || cam.MaxZoom < cam.MinZoom {
		return fmt.Errorf("%w: camera zoom %v outside (0, %v..%v]", ErrInvalidConfig, cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
	if cam.ZoomStep <= 1 {
		return fmt.Errorf("%w: camera zoom_step %v must exceed 1", ErrInvalidConfig, cam.ZoomStep)
	}
	if cam.MaxPitchDeg <= 0 || cam.MaxPitchDeg >= 90 {
		return fmt.Errorf("%w: camera max_pitch_deg %v must be in (0, 90)", ErrInvalidConfig, cam.MaxPitchDeg)
	}
	// LookAt with a fixed +Y up vector is undefined for an eye on the Y axis
	if cam.Position[0] == 0 && cam.Position[2] == 0 {
		return fmt.Errorf("%w: camera position %v lies on the up axis", ErrInvalidConfig, cam.Position)
	}

	if c.Input.OrbitSpeed <= 0 {
		return fmt.Errorf("%w: input orbit_speed %v", ErrInvalidConfig, c.Input.OrbitSpeed)
	}
	if c.HUD.Enabled && c.HUD.FontSize <= 0 {
		return fmt.Errorf("%w: hud font_size %d", ErrInvalidConfig, c.HUD.FontSize)
	}
	hc := c.HUD.Color
	if err := validateColor("hud", [4]float32{hc[0], hc[1], hc[2], 1}); err != nil {
		return err
	}

	for _, set := range [][]PrimitiveConfig{c.Scene.Quads, c.Scene.Spheres} {
		for _, p := range set {
			if err := validateColor(p.Name, p.Color); err != nil {
				return err
			}
		}
	}
	for _, p := range c.Scene.Points {
		if err := validateColor(p.Name, p.Color); err != nil {
			return err
		}
	}
	return nil
}

func validateColor(name string, c [4]float32) error {
	for _, v := range c {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %q color %v outside [0,1]", ErrInvalidConfig, name, c)
		}
	}
	return nil
}
