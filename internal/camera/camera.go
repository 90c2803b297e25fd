// Package camera derives view and projection matrices for an orthographic
// camera orbiting the world origin.
package camera

import (
	"math"

	"planeviz/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	cameraTarget = mgl32.Vec3{0, 0, 0}
	cameraUp     = mgl32.Vec3{0, 1, 0}
)

// Camera is an orthographic camera orbiting the world origin.
//
// View is always the inverse of the eye frame built from (Position, origin, up);
// every draw path uses View, never the eye frame directly.
type Camera struct {
	NearPlane float32
	FarPlane  float32
	// Zoom is the orthographic half-extent on both axes
	Zoom     float32
	Position mgl32.Vec3

	MinZoom  float32
	MaxZoom  float32
	ZoomStep float32
	// MaxPitch bounds the elevation of Position above/below the XZ plane (radians)
	MaxPitch float32

	initial mgl32.Vec3
	zoom0   float32
}

// New creates a camera at position with the given clip planes and zoom.
func New(position mgl32.Vec3, near, far, zoom float32) *Camera {
	return &Camera{
		NearPlane: near,
		FarPlane:  far,
		Zoom:      zoom,
		Position:  position,
		MinZoom:   0.05,
		MaxZoom:   100,
		ZoomStep:  1.1,
		MaxPitch:  mgl32.DegToRad(85),
		initial:   position,
		zoom0:     zoom,
	}
}

// FromConfig creates a camera from its configuration section.
func FromConfig(cfg config.CameraConfig) *Camera {
	c := New(mgl32.Vec3(cfg.Position), cfg.Near, cfg.Far, cfg.Zoom)
	c.MinZoom = cfg.MinZoom
	c.MaxZoom = cfg.MaxZoom
	c.ZoomStep = cfg.ZoomStep
	c.MaxPitch = mgl32.DegToRad(cfg.MaxPitchDeg)
	return c
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, cameraTarget, cameraUp)
}

// EyeFrame returns the camera-to-world matrix: columns are the camera's
// right, up and backward axes in world space plus the eye position.
func (c *Camera) EyeFrame() mgl32.Mat4 {
	f := cameraTarget.Sub(c.Position).Normalize()
	s := f.Cross(cameraUp).Normalize()
	u := s.Cross(f)
	return mgl32.Mat4{
		s.X(), s.Y(), s.Z(), 0,
		u.X(), u.Y(), u.Z(), 0,
		-f.X(), -f.Y(), -f.Z(), 0,
		c.Position.X(), c.Position.Y(), c.Position.Z(), 1,
	}
}

// Ortho returns the symmetric orthographic projection for the current zoom.
func (c *Camera) Ortho() mgl32.Mat4 {
	z := c.Zoom
	return mgl32.Ortho(-z, z, -z, z, c.NearPlane, c.FarPlane)
}

// Right returns the camera's local +X axis in world space (first row of View).
func (c *Camera) Right() mgl32.Vec3 {
	v := c.View()
	return mgl32.Vec3{v.At(0, 0), v.At(0, 1), v.At(0, 2)}
}

// Orbit rotates the eye about the world up axis by yaw, then about the
// camera right axis by pitch (radians). The distance to the origin is kept;
// the elevation is clamped to MaxPitch.
func (c *Camera) Orbit(yaw, pitch float32) {
	radius := c.Position.Len()
	if radius == 0 {
		return
	}

	pos := mgl32.HomogRotate3DY(yaw).Mul4x1(c.Position.Vec4(1)).Vec3()

	if pitch != 0 {
		elevation := float32(math.Asin(float64(clamp(pos.Y()/radius, -1, 1))))
		target := clamp(elevation+pitch, -c.MaxPitch, c.MaxPitch)
		if delta := target - elevation; delta != 0 {
			right := rightOf(pos)
			pos = mgl32.HomogRotate3D(-delta, right).Mul4x1(pos.Vec4(1)).Vec3()
		}
	}

	// Re-normalize against float drift
	c.Position = pos.Normalize().Mul(radius)
}

// ZoomBy changes the zoom by ZoomStep per wheel step; positive steps zoom in.
func (c *Camera) ZoomBy(steps float32) {
	z := c.Zoom * float32(math.Pow(float64(c.ZoomStep), float64(-steps)))
	c.Zoom = clamp(z, c.MinZoom, c.MaxZoom)
}

// Reset restores the position and zoom the camera was created with.
func (c *Camera) Reset() {
	c.Position = c.initial
	c.Zoom = c.zoom0
}

// Elevation returns the angle of the eye above the XZ plane (radians).
func (c *Camera) Elevation() float32 {
	r := c.Position.Len()
	if r == 0 {
		return 0
	}
	return float32(math.Asin(float64(clamp(c.Position.Y()/r, -1, 1))))
}

// rightOf returns the camera right axis for an eye at pos looking at the origin.
func rightOf(pos mgl32.Vec3) mgl32.Vec3 {
	f := cameraTarget.Sub(pos)
	return f.Cross(cameraUp).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
