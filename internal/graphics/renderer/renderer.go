package renderer

import (
	"planeviz/internal/camera"
	"planeviz/internal/config"
	"planeviz/internal/graphics/pass"
	"planeviz/internal/profiling"
	"planeviz/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera
	state       pass.Applier
	surface     Surface

	Background mgl32.Vec4
}

// NewRenderer initializes each renderable in order. If one fails, the ones
// already initialized are disposed.
func NewRenderer(cam *camera.Camera, state pass.Applier, surface Surface, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		renderables: rs,
		camera:      cam,
		state:       state,
		surface:     surface,
		Background:  mgl32.Vec4{1, 1, 1, 1},
	}
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	return r, nil
}

// Render draws one frame: clear, then every pass in order with its state
// applied for the duration of the pass and restored afterwards.
func (r *Renderer) Render(sc *scene.Scene, dt float64) {
	defer profiling.Track("renderer.Render")()

	r.surface.Clear(r.Background)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  sc,
		DT:     dt,
		View:   r.camera.View(),
		Proj:   r.camera.Ortho(),
		Eye:    r.camera.Position,
	}

	wireframe := config.GetWireframe()
	for _, kind := range pass.Kinds {
		ctx.Pass = kind
		r.surface.SetWireframe(wireframe && kind != pass.Overlay)
		pass.Run(r.state, kind.State(), func() {
			for _, rb := range r.renderables {
				rb.Render(ctx)
			}
		})
	}
	r.surface.SetWireframe(false)
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Camera returns the camera instance
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// UpdateViewport forwards framebuffer size changes to the surface and
// every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.surface.SetViewport(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
