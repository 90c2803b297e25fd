package renderer

import (
	"planeviz/internal/camera"
	"planeviz/internal/graphics/pass"
	"planeviz/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables.
// Render is called once per pass; Pass names the one being drawn.
type RenderContext struct {
	Camera *camera.Camera
	Scene  *scene.Scene
	Pass   pass.Kind
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	// Eye is the camera position in world space, used for depth sorting
	Eye mgl32.Vec3
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// Surface is the framebuffer the renderer draws into
type Surface interface {
	Clear(color mgl32.Vec4)
	SetWireframe(enabled bool)
	SetViewport(width, height int)
}
