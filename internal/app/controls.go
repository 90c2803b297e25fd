package app

import (
	"planeviz/internal/camera"
	"planeviz/internal/config"
	"planeviz/internal/input"
)

// keyZoomSteps is the zoom applied per frame while a zoom key is held
const keyZoomSteps = 0.1

// Source is the subset of the input manager the controls read
type Source interface {
	JustPressed(action input.Action) bool
	IsActive(action input.Action) bool
	ConsumeDrag() (dx, dy float32)
	ConsumeScroll() float64
}

// Controls maps input onto the camera and runtime settings
type Controls struct {
	// OrbitSpeed is radians of rotation per NDC unit of drag
	OrbitSpeed float32
}

// Apply consumes this frame's input. It returns true when the viewer should quit.
func (c Controls) Apply(cam *camera.Camera, in Source) (quit bool) {
	if in.JustPressed(input.ActionQuit) {
		return true
	}
	if in.JustPressed(input.ActionResetCamera) {
		cam.Reset()
	}
	if in.JustPressed(input.ActionToggleHUD) {
		config.ToggleHUD()
	}
	if in.JustPressed(input.ActionToggleWireframe) {
		config.ToggleWireframe()
	}

	// Dragging right turns the scene right, dragging up tilts it toward the viewer
	if dx, dy := in.ConsumeDrag(); dx != 0 || dy != 0 {
		cam.Orbit(-dx*c.OrbitSpeed, -dy*c.OrbitSpeed)
	}

	steps := float32(in.ConsumeScroll())
	if in.IsActive(input.ActionZoomIn) {
		steps += keyZoomSteps
	}
	if in.IsActive(input.ActionZoomOut) {
		steps -= keyZoomSteps
	}
	if steps != 0 {
		cam.ZoomBy(steps)
	}
	return false
}
