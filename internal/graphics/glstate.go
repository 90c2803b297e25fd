package graphics

import (
	"planeviz/internal/graphics/pass"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLBackend forwards pass state changes to OpenGL
type GLBackend struct{}

// NewGLState returns a pass applier backed by the current GL context,
// synchronized to initial.
func NewGLState(initial pass.State) *pass.Tracker {
	return pass.NewTracker(GLBackend{}, initial)
}

func (GLBackend) SetDepthTest(enabled bool) { setCap(gl.DEPTH_TEST, enabled) }

func (GLBackend) SetDepthWrite(enabled bool) { gl.DepthMask(enabled) }

func (GLBackend) SetBlend(enabled bool) { setCap(gl.BLEND, enabled) }

func (GLBackend) SetBlendFunc(f pass.BlendFunc) {
	gl.BlendFuncSeparate(glFactor(f.SrcRGB), glFactor(f.DstRGB), glFactor(f.SrcAlpha), glFactor(f.DstAlpha))
}

func (GLBackend) SetCull(enabled bool) { setCap(gl.CULL_FACE, enabled) }

func (GLBackend) SetCullMode(m pass.CullMode) {
	if m == pass.CullFront {
		gl.CullFace(gl.FRONT)
	} else {
		gl.CullFace(gl.BACK)
	}
}

func setCap(c uint32, enabled bool) {
	if enabled {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func glFactor(f pass.BlendFactor) uint32 {
	switch f {
	case pass.BlendZero:
		return gl.ZERO
	case pass.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case pass.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ONE
	}
}

// GLSurface is the default framebuffer of the current context
type GLSurface struct{}

func (GLSurface) Clear(c mgl32.Vec4) {
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (GLSurface) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (GLSurface) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
