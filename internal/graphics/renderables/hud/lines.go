package hud

import (
	"fmt"

	"planeviz/internal/camera"
	"planeviz/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// HelpLine lists the viewer's bindings
const HelpLine = "drag: orbit  scroll: zoom  R: reset  H: hud  F: wireframe  Esc: quit"

// margin is the pixel inset from the viewport edges
const margin = 10

// Lines formats the overlay text for a camera and rolling frame stats.
// The first line is omitted while no frames have been recorded.
func Lines(cam *camera.Camera, stats profiling.FrameStats, wireframe bool) []string {
	lines := make([]string, 0, 3)
	if stats.Frames > 0 {
		lines = append(lines, fmt.Sprintf("%.0f fps  %.2fms avg  %.2fms max",
			stats.FPS(), ms(stats.Avg.Microseconds()), ms(stats.Max.Microseconds())))
	}
	mode := "solid"
	if wireframe {
		mode = "wireframe"
	}
	lines = append(lines,
		fmt.Sprintf("zoom %.2f  elevation %.1f deg  %s", cam.Zoom, mgl32.RadToDeg(cam.Elevation()), mode),
		fmt.Sprintf("eye (%.2f, %.2f, %.2f)", cam.Position.X(), cam.Position.Y(), cam.Position.Z()),
	)
	return lines
}

// RightAligned returns the pen x that ends a line of textWidth pixels at the
// right margin of a viewport width pixels wide, clamped to the left margin.
func RightAligned(width int, textWidth float32) float32 {
	x := float32(width) - margin - textWidth
	if x < margin {
		return margin
	}
	return x
}

func ms(us int64) float64 { return float64(us) / 1000 }
