package graphics

import (
	"planeviz/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MeshBuffers are the GPU handles of one uploaded mesh
type MeshBuffers struct {
	VAO         uint32
	VBO         uint32
	IBO         uint32
	VertexCount int32
	IndexCount  int32
}

// UploadMesh creates a VAO with interleaved pos.xyz + normal.xyz at
// attribute locations 0 and 1, and a uint16 index buffer when the mesh is indexed.
func UploadMesh(m *meshing.Mesh) *MeshBuffers {
	b := &MeshBuffers{
		VertexCount: int32(m.VertexCount()),
		IndexCount:  int32(m.IndexCount()),
	}
	verts := m.Interleaved()

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	if len(m.Indices) > 0 {
		gl.GenBuffers(1, &b.IBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.IBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return b
}

// Draw issues the draw call for the buffers with the given primitive mode.
func (b *MeshBuffers) Draw(mode uint32) {
	gl.BindVertexArray(b.VAO)
	if b.IBO != 0 {
		gl.DrawElementsWithOffset(mode, b.IndexCount, gl.UNSIGNED_SHORT, 0)
	} else {
		gl.DrawArrays(mode, 0, b.VertexCount)
	}
}

// Delete releases the GPU buffers
func (b *MeshBuffers) Delete() {
	if b.IBO != 0 {
		gl.DeleteBuffers(1, &b.IBO)
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
	}
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
	}
	*b = MeshBuffers{}
}
