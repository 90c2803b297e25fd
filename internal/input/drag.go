package input

// PixelToNDC maps window pixel coordinates (top-left origin) to normalized
// device coordinates in [-1, 1] with +Y up. A zero-sized window maps to 0.
func PixelToNDC(x, y float64, width, height int) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	nx := 2*x/float64(width) - 1
	ny := 1 - 2*y/float64(height)
	return float32(nx), float32(ny)
}

// Drag accumulates cursor motion in NDC while a button is held.
type Drag struct {
	active  bool
	hasLast bool
	lastX   float32
	lastY   float32
	dx, dy  float32
}

// Press starts a drag from the last recorded cursor position
func (d *Drag) Press() { d.active = true }

// Release ends the drag; motion already accumulated is kept until consumed
func (d *Drag) Release() { d.active = false }

// Move records the cursor; motion counts only while the drag is active.
func (d *Drag) Move(x, y float32) {
	if d.active && d.hasLast {
		d.dx += x - d.lastX
		d.dy += y - d.lastY
	}
	d.lastX, d.lastY = x, y
	d.hasLast = true
}

// Consume returns and clears the accumulated motion
func (d *Drag) Consume() (dx, dy float32) {
	dx, dy = d.dx, d.dy
	d.dx, d.dy = 0, 0
	return dx, dy
}
