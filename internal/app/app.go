// Package app runs the viewer's frame loop.
package app

import (
	"log/slog"
	"time"

	"planeviz/internal/camera"
	"planeviz/internal/graphics/renderer"
	"planeviz/internal/input"
	"planeviz/internal/profiling"
	"planeviz/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged
const slowFrame = 16 * time.Millisecond

// App owns the window, input, and renderer for one viewer session
type App struct {
	window   *glfw.Window
	input    *input.InputManager
	renderer *renderer.Renderer
	scene    *scene.Scene
	camera   *camera.Camera
	controls Controls

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	log        *slog.Logger
}

// New wires input callbacks and framebuffer resizing to r
func New(window *glfw.Window, im *input.InputManager, r *renderer.Renderer, sc *scene.Scene, controls Controls, log *slog.Logger) *App {
	a := &App{
		window:     window,
		input:      im,
		renderer:   r,
		scene:      sc,
		camera:     r.Camera(),
		controls:   controls,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
		log:        log,
	}

	im.Install(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
		a.RefreshRender()
	})

	fw, fh := window.GetFramebufferSize()
	r.UpdateViewport(fw, fh)
	ww, wh := window.GetSize()
	im.SetWindowSize(ww, wh)
	return a
}

// Run loops until the window is closed or quit is requested
func (a *App) Run() {
	a.log.Info("viewer started", "instances", len(a.scene.Instances))
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.log.Info("viewer stopped", "avg_frame", profiling.Stats().Avg)
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	func() {
		defer profiling.Track("input.apply")()
		if a.controls.Apply(a.camera, a.input) {
			a.window.SetShouldClose(true)
		}
	}()

	a.renderer.Render(a.scene, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	processing := time.Since(start)
	if processing > slowFrame {
		a.log.Warn("slow frame", "duration", processing, "top", profiling.TopN(5))
	}

	a.input.PostUpdate()
	a.fpsLimiter.Wait()
	profiling.RecordFrame(time.Since(start))
}

// RefreshRender repaints during a live resize, when the loop is blocked in PollEvents
func (a *App) RefreshRender() {
	a.renderer.Render(a.scene, 0)
	a.window.SwapBuffers()
}
