package meshing

// Quad vertex layout:
//
//	v1------v0
//	|       |
//	|       |
//	v2------v3
var (
	quadPositions = []float32{
		1, 1, 0,
		-1, 1, 0,
		-1, -1, 0,
		1, -1, 0,
	}
	quadIndices = []uint16{0, 1, 2, 2, 3, 0}
)

// Quad returns the 2x2 square in the XY plane centered on the origin, facing +Z.
func Quad() *Mesh {
	positions := make([]float32, len(quadPositions))
	copy(positions, quadPositions)
	indices := make([]uint16, len(quadIndices))
	copy(indices, quadIndices)

	normals := make([]float32, 0, len(positions))
	for i := 0; i < 4; i++ {
		normals = append(normals, 0, 0, 1)
	}
	return &Mesh{Positions: positions, Normals: normals, Indices: indices}
}

// Point returns a single unindexed vertex at the local origin.
// Point placement is carried entirely by the instance model matrix.
func Point() *Mesh {
	return &Mesh{Positions: []float32{0, 0, 0}}
}
