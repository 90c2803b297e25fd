package meshing

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSphereCounts(t *testing.T) {
	for s := 3; s <= 24; s += 3 {
		for st := 2; st <= 20; st += 2 {
			m, err := Sphere(s, st)
			if err != nil {
				t.Fatalf("Sphere(%d,%d): unexpected error %v", s, st, err)
			}
			wantVerts := 2 + s*(st-1)
			wantIdx := 6 * s * (st - 1)
			if m.VertexCount() != wantVerts {
				t.Errorf("Sphere(%d,%d): got %d vertices, want %d", s, st, m.VertexCount(), wantVerts)
			}
			if m.IndexCount() != wantIdx {
				t.Errorf("Sphere(%d,%d): got %d indices, want %d", s, st, m.IndexCount(), wantIdx)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Sphere(%d,%d): invalid mesh: %v", s, st, err)
			}
		}
	}
}

func TestSphereUnitRadius(t *testing.T) {
	m, err := Sphere(DefaultSlices, DefaultStacks)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		n := math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
		if math.Abs(n-1) > 1e-5 {
			t.Fatalf("vertex %d %v has norm %f", i, v, n)
		}
	}
}

func TestSpherePoles(t *testing.T) {
	m, err := Sphere(8, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Vertex(0); got != [3]float32{0, 1, 0} {
		t.Errorf("top pole: got %v", got)
	}
	if got := m.Vertex(m.VertexCount() - 1); got != [3]float32{0, -1, 0} {
		t.Errorf("bottom pole: got %v", got)
	}
}

func TestSphereOutwardWinding(t *testing.T) {
	m, err := Sphere(12, 7)
	if err != nil {
		t.Fatal(err)
	}
	for tri := 0; tri < m.IndexCount()/3; tri++ {
		a := m.Vertex(int(m.Indices[3*tri]))
		b := m.Vertex(int(m.Indices[3*tri+1]))
		c := m.Vertex(int(m.Indices[3*tri+2]))
		va, vb, vc := mgl32.Vec3(a), mgl32.Vec3(b), mgl32.Vec3(c)
		n := vb.Sub(va).Cross(vc.Sub(va))
		centroid := va.Add(vb).Add(vc).Mul(1.0 / 3.0)
		if n.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d (%v %v %v) faces inward", tri, a, b, c)
		}
	}
}

func TestSphereMinimal(t *testing.T) {
	// Two stacks: a single ring joined directly by both fans
	m, err := Sphere(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 5 || m.IndexCount() != 18 {
		t.Fatalf("got %d vertices / %d indices, want 5 / 18", m.VertexCount(), m.IndexCount())
	}
}

func TestSphereInvalidParameters(t *testing.T) {
	cases := []struct{ slices, stacks int }{
		{2, 10}, {0, 10}, {10, 1}, {10, 0}, {-1, -1},
		{1000, 1000}, // exceeds uint16 indexing
	}
	for _, c := range cases {
		m, err := Sphere(c.slices, c.stacks)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Sphere(%d,%d): got err %v, want ErrInvalidParameter", c.slices, c.stacks, err)
		}
		if m != nil {
			t.Errorf("Sphere(%d,%d): expected nil mesh on error", c.slices, c.stacks)
		}
	}
}

func TestSphereLargestAddressable(t *testing.T) {
	// 2 + 255*257 = 65537 is one past the limit; 2 + 254*258 = 65534 fits
	if _, err := Sphere(254, 259); err != nil {
		t.Fatalf("expected 65534-vertex sphere to build, got %v", err)
	}
	if _, err := Sphere(255, 258); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected 65537-vertex sphere to fail, got %v", err)
	}
}

func TestQuadAndPoint(t *testing.T) {
	q := Quad()
	if q.VertexCount() != 4 || q.IndexCount() != 6 {
		t.Fatalf("quad: got %d vertices / %d indices", q.VertexCount(), q.IndexCount())
	}
	if err := q.Validate(); err != nil {
		t.Fatalf("quad invalid: %v", err)
	}
	// Mutating one quad must not leak into the next
	q.Positions[0] = 42
	if Quad().Positions[0] != 1 {
		t.Fatalf("Quad shares backing storage between calls")
	}

	p := Point()
	if p.VertexCount() != 1 || p.IndexCount() != 0 {
		t.Fatalf("point: got %d vertices / %d indices", p.VertexCount(), p.IndexCount())
	}
}

func TestInterleaved(t *testing.T) {
	q := Quad()
	data := q.Interleaved()
	if len(data) != 4*VertexStride {
		t.Fatalf("got %d floats, want %d", len(data), 4*VertexStride)
	}
	// second vertex: position (-1,1,0) normal (0,0,1)
	want := []float32{-1, 1, 0, 0, 0, 1}
	for i, w := range want {
		if data[VertexStride+i] != w {
			t.Fatalf("interleaved[%d] = %v, want %v", VertexStride+i, data[VertexStride+i], w)
		}
	}

	p := Point().Interleaved()
	if len(p) != VertexStride || p[3] != 0 || p[4] != 0 || p[5] != 0 {
		t.Fatalf("point interleaved: got %v", p)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	m := &Mesh{Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, Indices: []uint16{0, 1, 3}}
	if err := m.Validate(); err == nil {
		t.Fatal("expected out-of-range index to fail validation")
	}
	m.Indices = []uint16{0, 1}
	if err := m.Validate(); err == nil {
		t.Fatal("expected partial triangle to fail validation")
	}
}

func BenchmarkSphere(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Sphere(64, 32)
	}
}
