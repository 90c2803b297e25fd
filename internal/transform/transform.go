// Package transform composes model matrices for placed primitives.
//
// Builder calls right-multiply the accumulated matrix, so the last call is the
// first one applied to a local-space point:
//
//	transform.New().Translate(p).Scale(s).Mat() // scale, then translate
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Builder accumulates a model matrix.
type Builder struct {
	m mgl32.Mat4
}

// New returns a builder starting from identity.
func New() *Builder {
	return &Builder{m: mgl32.Ident4()}
}

// From returns a builder starting from m.
func From(m mgl32.Mat4) *Builder {
	return &Builder{m: m}
}

// Translate appends a translation.
func (b *Builder) Translate(v mgl32.Vec3) *Builder {
	b.m = b.m.Mul4(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
	return b
}

// Scale appends a per-axis scale.
func (b *Builder) Scale(v mgl32.Vec3) *Builder {
	b.m = b.m.Mul4(mgl32.Scale3D(v.X(), v.Y(), v.Z()))
	return b
}

// ScaleUniform appends the same scale on every axis.
func (b *Builder) ScaleUniform(s float32) *Builder {
	return b.Scale(mgl32.Vec3{s, s, s})
}

// Rotate appends a rotation of angle radians about axis.
func (b *Builder) Rotate(angle float32, axis mgl32.Vec3) *Builder {
	b.m = b.m.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
	return b
}

// RotateX appends a rotation about the X axis (radians).
func (b *Builder) RotateX(angle float32) *Builder {
	b.m = b.m.Mul4(mgl32.HomogRotate3DX(angle))
	return b
}

// RotateY appends a rotation about the Y axis (radians).
func (b *Builder) RotateY(angle float32) *Builder {
	b.m = b.m.Mul4(mgl32.HomogRotate3DY(angle))
	return b
}

// RotateZ appends a rotation about the Z axis (radians).
func (b *Builder) RotateZ(angle float32) *Builder {
	b.m = b.m.Mul4(mgl32.HomogRotate3DZ(angle))
	return b
}

// Mat returns the accumulated matrix.
func (b *Builder) Mat() mgl32.Mat4 {
	return b.m
}

// TRS composes translate * rotate * scale. rotation holds Euler angles in
// degrees applied to local points in Z, Y, X order (X outermost).
func TRS(translation, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	return New().
		Translate(translation).
		RotateX(mgl32.DegToRad(rotation.X())).
		RotateY(mgl32.DegToRad(rotation.Y())).
		RotateZ(mgl32.DegToRad(rotation.Z())).
		Scale(scale).
		Mat()
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of m, which
// keeps normals perpendicular to surfaces under non-uniform scale. A singular
// m yields the zero matrix.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// PointModel places a point marker at pos. The marker scale is applied after
// the translation, so the marker ends up at half of pos in world space.
func PointModel(pos mgl32.Vec3) mgl32.Mat4 {
	return New().ScaleUniform(0.5).Translate(pos).Mat()
}

// Anchor returns the world-space position of the local origin under m.
func Anchor(m mgl32.Mat4) mgl32.Vec3 {
	return m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// QuadNormal returns the unit world-space normal of the unit quad placed by m.
func QuadNormal(m mgl32.Mat4) mgl32.Vec3 {
	a := m.Mul4x1(mgl32.Vec4{1, -1, 0, 1}).Vec3()
	b := m.Mul4x1(mgl32.Vec4{-1, -1, 0, 1}).Vec3()
	c := m.Mul4x1(mgl32.Vec4{-1, 1, 0, 1}).Vec3()

	u := b.Sub(a)
	v := b.Sub(c)
	return u.Cross(v).Normalize()
}
