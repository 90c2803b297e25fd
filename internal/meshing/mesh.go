package meshing

import (
	"errors"
	"fmt"
	"math"
)

// VertexStride is number of float32 per interleaved vertex (pos.xyz + normal.xyz)
const VertexStride = 6

// MaxVertices is the largest vertex count addressable by uint16 indices.
const MaxVertices = math.MaxUint16 + 1

// ErrInvalidParameter is returned when mesh generation parameters would
// produce a degenerate or unaddressable mesh.
var ErrInvalidParameter = errors.New("invalid mesh parameter")

// ErrInvalidMesh is returned by Validate for malformed buffers.
var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is an indexed triangle list. Positions and Normals hold xyz triples.
// A mesh is never modified after generation; instances share it by pointer.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) [3]float32 {
	return [3]float32{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// Validate checks the structural invariants of the mesh.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: positions length %d is not a multiple of 3", ErrInvalidMesh, len(m.Positions))
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: normals length %d does not match positions length %d", ErrInvalidMesh, len(m.Normals), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	n := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range (vertex count %d)", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// Interleaved returns pos+normal interleaved vertex data ready for upload.
// Missing normals are written as zero.
func (m *Mesh) Interleaved() []float32 {
	n := m.VertexCount()
	out := make([]float32, 0, n*VertexStride)
	for i := 0; i < n; i++ {
		out = append(out, m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2])
		if len(m.Normals) == len(m.Positions) {
			out = append(out, m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2])
		} else {
			out = append(out, 0, 0, 0)
		}
	}
	return out
}
