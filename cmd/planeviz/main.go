package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"planeviz/assets"
	"planeviz/internal/app"
	"planeviz/internal/camera"
	"planeviz/internal/config"
	"planeviz/internal/graphics"
	"planeviz/internal/graphics/pass"
	"planeviz/internal/graphics/renderables/hud"
	"planeviz/internal/graphics/renderables/meshes"
	"planeviz/internal/graphics/renderables/points"
	"planeviz/internal/graphics/renderer"
	"planeviz/internal/graphics/source"
	"planeviz/internal/input"
	"planeviz/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var programs = map[string]source.ProgramSource{
	"mesh":  {Vertex: assets.MeshVert, Fragment: assets.MeshFrag},
	"point": {Vertex: assets.PointVert, Fragment: assets.PointFrag},
	"text":  {Vertex: assets.TextVert, Fragment: assets.TextFrag},
}

func main() {
	configPath := flag.String("config", "", "scene configuration file (YAML)")
	shaders := flag.String("shaders", "", "shader source: directory or http(s) base URL (default embedded)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	closer.Bind(func() {
		slog.Info("shutting down")
	})
	defer closer.Close()

	if err := run(*configPath, *shaders); err != nil {
		slog.Error("planeviz failed", "err", err)
		closer.Fatalln(err)
	}
}

func run(configPath, shaderSource string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if shaderSource != "" {
		cfg.Shaders.Source = shaderSource
	}
	config.Apply(cfg)

	sc, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	// Source text is fetched before any GL work so remote loads overlap
	loader, err := source.NewLoader(cfg.Shaders.Source, assets.FS)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	texts, err := source.LoadAll(ctx, loader, programs)
	cancel()
	if err != nil {
		return err
	}
	slog.Debug("loaded shader sources", "programs", len(texts), "source", cfg.Shaders.Source)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	shadersByName := make(map[string]*graphics.Shader, len(texts))
	defer func() {
		for _, s := range shadersByName {
			s.Delete()
		}
	}()
	for name, t := range texts {
		s, err := graphics.NewShader(t.Vertex, t.Fragment)
		if err != nil {
			return fmt.Errorf("program %s: %w", name, err)
		}
		shadersByName[name] = s
	}

	features := []renderer.Renderable{
		meshes.NewMeshes(sc, shadersByName["mesh"]),
		points.NewPoints(sc, shadersByName["point"]),
	}
	if cfg.HUD.Enabled {
		h := hud.NewHUD(shadersByName["text"], cfg.HUD.FontSize)
		h.Color = mgl32.Vec3(cfg.HUD.Color)
		features = append(features, h)
	}

	cam := camera.FromConfig(cfg.Camera)
	r, err := renderer.NewRenderer(cam, graphics.NewGLState(pass.Default()), graphics.GLSurface{}, features...)
	if err != nil {
		return err
	}
	defer r.Dispose()
	r.Background = mgl32.Vec4(cfg.Window.Background)

	im := input.NewInputManager(cfg.Window.Width, cfg.Window.Height)
	a := app.New(window, im, r, sc, app.Controls{OrbitSpeed: cfg.Input.OrbitSpeed}, slog.Default())
	a.Run()
	return nil
}
