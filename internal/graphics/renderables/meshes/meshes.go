// Package meshes draws the scene's quads and spheres: opaque instances in
// the opaque pass, translucent ones back-to-front in the transparent pass.
package meshes

import (
	"planeviz/internal/graphics"
	"planeviz/internal/graphics/pass"
	renderer "planeviz/internal/graphics/renderer"
	"planeviz/internal/meshing"
	"planeviz/internal/profiling"
	"planeviz/internal/scene"
	"planeviz/internal/transform"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Meshes implements instanced quad and sphere rendering
type Meshes struct {
	scene   *scene.Scene
	shader  *graphics.Shader
	buffers map[*meshing.Mesh]*graphics.MeshBuffers

	LightDir mgl32.Vec3
	Ambient  float32
}

// NewMeshes creates a mesh renderable for sc using the given program
func NewMeshes(sc *scene.Scene, shader *graphics.Shader) *Meshes {
	return &Meshes{
		scene:    sc,
		shader:   shader,
		buffers:  make(map[*meshing.Mesh]*graphics.MeshBuffers),
		LightDir: mgl32.Vec3{0.3, 0.8, -0.5},
		Ambient:  0.55,
	}
}

// Init uploads every shared mesh the scene references
func (m *Meshes) Init() error {
	for _, mesh := range m.scene.Meshes() {
		if mesh == m.scene.PointMesh {
			continue
		}
		if err := mesh.Validate(); err != nil {
			m.Dispose()
			return err
		}
		m.buffers[mesh] = graphics.UploadMesh(mesh)
	}
	return nil
}

// Render draws opaque instances in the opaque pass and sorted translucent
// instances in the transparent pass.
func (m *Meshes) Render(ctx renderer.RenderContext) {
	if ctx.Scene == nil {
		return
	}
	switch ctx.Pass {
	case pass.Opaque:
		defer profiling.Track("renderer.meshes.opaque")()
		opaque, _ := ctx.Scene.Partition()
		m.draw(ctx, opaque)
	case pass.Transparent:
		defer profiling.Track("renderer.meshes.transparent")()
		_, translucent := ctx.Scene.Partition()
		m.draw(ctx, scene.BackToFront(translucent, ctx.Eye))
	}
}

func (m *Meshes) draw(ctx renderer.RenderContext, instances []*scene.Instance) {
	if len(instances) == 0 {
		return
	}
	m.shader.Use()
	m.shader.SetMatrix4("view", ctx.View)
	m.shader.SetMatrix4("proj", ctx.Proj)
	m.shader.SetVector3("lightDir", m.LightDir)
	m.shader.SetFloat("ambient", m.Ambient)

	for _, in := range instances {
		if in.Kind == scene.KindPoint {
			continue
		}
		b, ok := m.buffers[in.Mesh]
		if !ok {
			continue
		}
		m.shader.SetMatrix4("model", in.Model)
		m.shader.SetMatrix3("normalMatrix", transform.NormalMatrix(in.Model))
		m.shader.SetVector4("color", in.Color)
		b.Draw(gl.TRIANGLES)
	}
	gl.BindVertexArray(0)
}

// Dispose releases the uploaded buffers. The shader is owned by the caller.
func (m *Meshes) Dispose() {
	for mesh, b := range m.buffers {
		b.Delete()
		delete(m.buffers, mesh)
	}
}

// SetViewport is a no-op; the projection comes from the camera
func (m *Meshes) SetViewport(width, height int) {}
