package graphics

import (
	"planeviz/internal/graphics/text"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FontRenderer draws text from a baked atlas. Blend and depth state belong
// to the caller's pass.
type FontRenderer struct {
	atlas      *text.Atlas
	textureID  uint32
	shader     *Shader
	vao        uint32
	vbo        uint32
	projection mgl32.Mat4
}

// NewFontRenderer uploads atlas as a single-channel texture and prepares a
// dynamic vertex buffer of (x, y, u, v) vertices.
func NewFontRenderer(atlas *text.Atlas, shader *Shader) *FontRenderer {
	fr := &FontRenderer{atlas: atlas, shader: shader}

	size := atlas.Image.Bounds().Size()
	gl.GenTextures(1, &fr.textureID)
	gl.BindTexture(gl.TEXTURE_2D, fr.textureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)

	fr.SetViewport(900, 900)
	return fr
}

// SetViewport sets a top-left origin pixel projection
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// LineHeight returns the baseline step at scale
func (fr *FontRenderer) LineHeight(scale float32) float32 {
	return fr.atlas.LineHeight * scale
}

// Measure returns the width of s in pixels at scale
func (fr *FontRenderer) Measure(s string, scale float32) float32 {
	return fr.atlas.Width(s, scale)
}

// RenderLines draws lines starting at baseline (x, yStart) in one draw call.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	y := yStart
	for _, line := range lines {
		if line != "" {
			verts = append(verts, fr.atlas.Vertices(line, x, y, scale)...)
		}
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("proj", fr.projection)
	fr.shader.SetInt("atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.textureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan before upload to avoid stalls on the previous frame's draw
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)
}

// Dispose releases the texture and buffers. The shader is owned by the caller.
func (fr *FontRenderer) Dispose() {
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
		fr.vbo = 0
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
		fr.vao = 0
	}
	if fr.textureID != 0 {
		gl.DeleteTextures(1, &fr.textureID)
		fr.textureID = 0
	}
}
