package meshing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteOBJ writes m as a Wavefront OBJ object named name. Normals are written
// when present and faces then reference them as v//vn.
func WriteOBJ(w io.Writer, m *Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	for i := 0; i < len(m.Positions); i += 3 {
		writeTriple(bw, "v", m.Positions[i:i+3])
	}
	hasNormals := len(m.Normals) == len(m.Positions)
	if hasNormals {
		for i := 0; i < len(m.Normals); i += 3 {
			writeTriple(bw, "vn", m.Normals[i:i+3])
		}
	}

	// OBJ indices are 1-based
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := int(m.Indices[i])+1, int(m.Indices[i+1])+1, int(m.Indices[i+2])+1
		if hasNormals {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}
	return bw.Flush()
}

func writeTriple(w *bufio.Writer, tag string, v []float32) {
	w.WriteString(tag)
	for _, f := range v {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	w.WriteByte('\n')
}
