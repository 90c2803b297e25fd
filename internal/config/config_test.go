package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sphere.Slices != 20 || cfg.Sphere.Stacks != 20 {
		t.Fatalf("unexpected sphere defaults: %+v", cfg.Sphere)
	}
}

func TestParseOverridesAndKeepsDefaults(t *testing.T) {
	data := []byte(`
camera:
  zoom: 3
  position: [1, 0.5, -2]
scene:
  quads:
    - name: only
      translate: [0, 0, 4]
      color: [1, 0, 0, 0.5]
`)
	cfg := Default()
	if err := Parse(data, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.Zoom != 3 {
		t.Errorf("zoom: got %v, want 3", cfg.Camera.Zoom)
	}
	if cfg.Camera.Near != -10 || cfg.Camera.Far != 10 {
		t.Errorf("near/far defaults lost: %v %v", cfg.Camera.Near, cfg.Camera.Far)
	}
	if len(cfg.Scene.Quads) != 1 {
		t.Fatalf("quads: got %d, want the single configured quad", len(cfg.Scene.Quads))
	}
	if cfg.Scene.Quads[0].Scale != [3]float32{1, 1, 1} {
		t.Errorf("omitted scale should default to unit, got %v", cfg.Scene.Quads[0].Scale)
	}
	if len(cfg.Scene.Spheres) != 1 {
		t.Errorf("omitted spheres section should keep the default sphere")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"far before near": "camera: {near: 5, far: 1}",
		"zero zoom":       "camera: {zoom: 0}",
		"eye on up axis":  "camera: {position: [0, 2, 0]}",
		"bad color":       "scene: {points: [{name: p, color: [2, 0, 0, 1]}]}",
		"pitch too large": "camera: {max_pitch_deg: 90}",
		"zoom step":       "camera: {zoom_step: 1}",
		"window":          "window: {width: 0}",
		"hud color":       "hud: {color: [1.5, 0, 0]}",
	}
	for name, data := range cases {
		err := Parse([]byte(data), Default())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestParseRejectsWrongArrayLength(t *testing.T) {
	err := Parse([]byte("camera: {position: [1, 2]}"), Default())
	if err == nil {
		t.Fatal("expected a two-element position to fail decoding")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("sphere: {slices: 8, stacks: 4}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sphere.Slices != 8 || cfg.Sphere.Stacks != 4 {
		t.Fatalf("sphere: got %+v", cfg.Sphere)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestRuntimeSettings(t *testing.T) {
	SetFPSLimit(5)
	if got := GetFPSLimit(); got != 10 {
		t.Errorf("fps limit below floor: got %d, want 10", got)
	}
	SetFPSLimit(-3)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative fps limit: got %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("fps limit above ceiling: got %d, want 1000", got)
	}

	SetHUDVisible(true)
	if ToggleHUD() || GetHUDVisible() {
		t.Errorf("ToggleHUD should hide a visible HUD")
	}
	SetWireframe(false)
	if !ToggleWireframe() || !GetWireframe() {
		t.Errorf("ToggleWireframe should enable wireframe")
	}

	Apply(Default())
	if GetFPSLimit() != 120 || !GetHUDVisible() || GetWireframe() {
		t.Errorf("Apply(Default()) did not reset runtime settings")
	}
}

func TestDefaultHUDColorContrastsWithBackground(t *testing.T) {
	cfg := Default()
	bg := cfg.Window.Background
	fg := cfg.HUD.Color
	luma := func(r, g, b float32) float32 { return 0.2126*r + 0.7152*g + 0.0722*b }
	if d := luma(fg[0], fg[1], fg[2]) - luma(bg[0], bg[1], bg[2]); d < 0.5 && d > -0.5 {
		t.Errorf("hud color %v too close to background %v (luma diff %.2f)", fg, bg, d)
	}
}
