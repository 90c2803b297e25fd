package meshing

import (
	"fmt"
	"math"
)

// Default tessellation used for scene spheres.
const (
	DefaultSlices = 20
	DefaultStacks = 20
)

// Sphere builds a closed unit sphere from slices (longitude divisions, >= 3)
// and stacks (latitude divisions, >= 2).
//
// Layout: top pole, then stacks-1 rings of slices vertices each, then the
// bottom pole. The result has 2+slices*(stacks-1) vertices and
// 6*slices*(stacks-1) indices. Triangles wind counter-clockwise seen from outside.
func Sphere(slices, stacks int) (*Mesh, error) {
	if slices < 3 {
		return nil, fmt.Errorf("%w: slices must be >= 3, got %d", ErrInvalidParameter, slices)
	}
	if stacks < 2 {
		return nil, fmt.Errorf("%w: stacks must be >= 2, got %d", ErrInvalidParameter, stacks)
	}
	rings := stacks - 1
	vertexCount := 2 + slices*rings
	if vertexCount > MaxVertices {
		return nil, fmt.Errorf("%w: %d vertices exceed uint16 index range", ErrInvalidParameter, vertexCount)
	}

	positions := make([]float32, 0, vertexCount*3)
	indices := make([]uint16, 0, 6*slices*rings)

	positions = append(positions, 0, 1, 0)
	for i := 0; i < rings; i++ {
		phi := math.Pi * float64(i+1) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j < slices; j++ {
			theta := 2.0 * math.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)
			positions = append(positions,
				float32(sinPhi*cosTheta),
				float32(cosPhi),
				float32(sinPhi*sinTheta),
			)
		}
	}
	positions = append(positions, 0, -1, 0)

	top := uint16(0)
	bottom := uint16(vertexCount - 1)

	// ring returns the index of vertex j on interior ring r
	ring := func(r, j int) uint16 {
		return uint16(1 + r*slices + j%slices)
	}

	for j := 0; j < slices; j++ {
		indices = append(indices, top, ring(0, j+1), ring(0, j))
	}

	last := rings - 1
	for j := 0; j < slices; j++ {
		indices = append(indices, bottom, ring(last, j), ring(last, j+1))
	}

	for r := 0; r < rings-1; r++ {
		for j := 0; j < slices; j++ {
			i0 := ring(r, j)
			i1 := ring(r, j+1)
			i2 := ring(r+1, j+1)
			i3 := ring(r+1, j)
			indices = append(indices, i0, i1, i2)
			indices = append(indices, i0, i2, i3)
		}
	}

	// On a unit sphere the normal is the position
	normals := make([]float32, len(positions))
	copy(normals, positions)

	return &Mesh{Positions: positions, Normals: normals, Indices: indices}, nil
}
