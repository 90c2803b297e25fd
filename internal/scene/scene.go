// Package scene holds the primitive instances drawn each frame and orders
// translucent ones for blending.
package scene

import (
	"fmt"

	"planeviz/internal/config"
	"planeviz/internal/meshing"
	"planeviz/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies the primitive type of an instance
type Kind int

const (
	KindQuad Kind = iota
	KindSphere
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindQuad:
		return "quad"
	case KindSphere:
		return "sphere"
	case KindPoint:
		return "point"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Instance is one placed primitive. Mesh is shared and never modified; Model
// may be replaced between frames.
type Instance struct {
	Name  string
	Kind  Kind
	Mesh  *meshing.Mesh
	Model mgl32.Mat4
	Color mgl32.Vec4
}

// Translucent reports whether the instance must be drawn in the blended pass.
// Points are always opaque.
func (in *Instance) Translucent() bool {
	return in.Kind != KindPoint && in.Color.W() < 1
}

// Anchor returns the world-space sort anchor (model origin).
func (in *Instance) Anchor() mgl32.Vec3 {
	return transform.Anchor(in.Model)
}

// Scene is the set of instances built at startup in declaration order.
type Scene struct {
	Instances []*Instance

	// Shared meshes, one per kind
	QuadMesh   *meshing.Mesh
	SphereMesh *meshing.Mesh
	PointMesh  *meshing.Mesh
}

// New creates an empty scene with shared meshes for the given sphere tessellation.
func New(slices, stacks int) (*Scene, error) {
	sphere, err := meshing.Sphere(slices, stacks)
	if err != nil {
		return nil, fmt.Errorf("build sphere mesh: %w", err)
	}
	return &Scene{
		QuadMesh:   meshing.Quad(),
		SphereMesh: sphere,
		PointMesh:  meshing.Point(),
	}, nil
}

// FromConfig builds the scene described by cfg: quads, then spheres, then points.
func FromConfig(cfg *config.Config) (*Scene, error) {
	s, err := New(cfg.Sphere.Slices, cfg.Sphere.Stacks)
	if err != nil {
		return nil, err
	}
	for _, q := range cfg.Scene.Quads {
		s.AddQuad(q.Name, primitiveModel(q), mgl32.Vec4(q.Color))
	}
	for _, sp := range cfg.Scene.Spheres {
		s.AddSphere(sp.Name, primitiveModel(sp), mgl32.Vec4(sp.Color))
	}
	for _, p := range cfg.Scene.Points {
		s.AddPoint(p.Name, mgl32.Vec3(p.Position), mgl32.Vec4(p.Color))
	}
	return s, nil
}

func primitiveModel(p config.PrimitiveConfig) mgl32.Mat4 {
	return transform.TRS(mgl32.Vec3(p.Translate), mgl32.Vec3(p.Rotate), mgl32.Vec3(p.Scale))
}

// AddQuad appends a quad instance.
func (s *Scene) AddQuad(name string, model mgl32.Mat4, color mgl32.Vec4) *Instance {
	return s.add(&Instance{Name: name, Kind: KindQuad, Mesh: s.QuadMesh, Model: model, Color: color})
}

// AddSphere appends a sphere instance.
func (s *Scene) AddSphere(name string, model mgl32.Mat4, color mgl32.Vec4) *Instance {
	return s.add(&Instance{Name: name, Kind: KindSphere, Mesh: s.SphereMesh, Model: model, Color: color})
}

// AddPoint appends a point marker at pos.
func (s *Scene) AddPoint(name string, pos mgl32.Vec3, color mgl32.Vec4) *Instance {
	return s.add(&Instance{Name: name, Kind: KindPoint, Mesh: s.PointMesh, Model: transform.PointModel(pos), Color: color})
}

func (s *Scene) add(in *Instance) *Instance {
	s.Instances = append(s.Instances, in)
	return in
}

// Partition splits instances into the opaque and translucent sets, keeping
// declaration order within each.
func (s *Scene) Partition() (opaque, translucent []*Instance) {
	for _, in := range s.Instances {
		if in.Translucent() {
			translucent = append(translucent, in)
		} else {
			opaque = append(opaque, in)
		}
	}
	return opaque, translucent
}

// Meshes returns the distinct meshes referenced by the scene.
func (s *Scene) Meshes() []*meshing.Mesh {
	return []*meshing.Mesh{s.QuadMesh, s.SphereMesh, s.PointMesh}
}
