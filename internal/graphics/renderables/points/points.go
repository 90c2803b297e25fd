// Package points draws scene points as round sprites in the opaque pass.
package points

import (
	"planeviz/internal/graphics"
	"planeviz/internal/graphics/pass"
	renderer "planeviz/internal/graphics/renderer"
	"planeviz/internal/profiling"
	"planeviz/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DefaultSize is the sprite diameter in pixels
const DefaultSize = 10

// Points implements point sprite rendering
type Points struct {
	scene  *scene.Scene
	shader *graphics.Shader
	buf    *graphics.MeshBuffers

	Size float32
}

// NewPoints creates a point renderable for sc using the given program
func NewPoints(sc *scene.Scene, shader *graphics.Shader) *Points {
	return &Points{scene: sc, shader: shader, Size: DefaultSize}
}

// Init uploads the single-vertex point mesh and enables shader point sizes
func (p *Points) Init() error {
	if err := p.scene.PointMesh.Validate(); err != nil {
		return err
	}
	p.buf = graphics.UploadMesh(p.scene.PointMesh)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return nil
}

// Render draws every point instance during the opaque pass
func (p *Points) Render(ctx renderer.RenderContext) {
	if ctx.Pass != pass.Opaque || ctx.Scene == nil {
		return
	}
	defer profiling.Track("renderer.points")()

	p.shader.Use()
	p.shader.SetMatrix4("view", ctx.View)
	p.shader.SetMatrix4("proj", ctx.Proj)
	p.shader.SetFloat("pointSize", p.Size)
	for _, in := range ctx.Scene.Instances {
		if in.Kind != scene.KindPoint {
			continue
		}
		p.shader.SetMatrix4("model", in.Model)
		p.shader.SetVector4("color", in.Color)
		p.buf.Draw(gl.POINTS)
	}
	gl.BindVertexArray(0)
}

// Dispose releases the point buffer
func (p *Points) Dispose() {
	if p.buf != nil {
		p.buf.Delete()
		p.buf = nil
	}
}

func (p *Points) SetViewport(width, height int) {}
