// Package hud draws the text overlay in the overlay pass.
package hud

import (
	"planeviz/internal/config"
	"planeviz/internal/graphics"
	"planeviz/internal/graphics/pass"
	renderer "planeviz/internal/graphics/renderer"
	"planeviz/internal/graphics/text"
	"planeviz/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// HUD implements overlay text rendering
type HUD struct {
	shader       *graphics.Shader
	fontSize     int
	fontRenderer *graphics.FontRenderer
	width        int
	height       int

	Color mgl32.Vec3
}

// NewHUD creates a HUD renderable baking the built-in font at fontSize pixels
func NewHUD(shader *graphics.Shader, fontSize int) *HUD {
	return &HUD{
		shader:   shader,
		fontSize: fontSize,
		width:    900,
		height:   900,
		Color:    mgl32.Vec3{0.9, 0.9, 0.9},
	}
}

// Init bakes and uploads the font atlas
func (h *HUD) Init() error {
	atlas, err := text.BakeDefault(h.fontSize)
	if err != nil {
		return err
	}
	h.fontRenderer = graphics.NewFontRenderer(atlas, h.shader)
	h.fontRenderer.SetViewport(h.width, h.height)
	return nil
}

// Render draws the status lines in the top-left corner and the key bindings
// right-aligned along the bottom edge
func (h *HUD) Render(ctx renderer.RenderContext) {
	if ctx.Pass != pass.Overlay || !config.GetHUDVisible() {
		return
	}
	defer profiling.Track("renderer.hud")()

	lines := Lines(ctx.Camera, profiling.Stats(), config.GetWireframe())
	step := h.fontRenderer.LineHeight(1)
	h.fontRenderer.RenderLines(lines, margin, margin+step, step, 1, h.Color)

	x := RightAligned(h.width, h.fontRenderer.Measure(HelpLine, 1))
	h.fontRenderer.RenderLines([]string{HelpLine}, x, float32(h.height)-margin, step, 1, h.Color)
}

// Dispose releases the font texture and buffers
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
		h.fontRenderer = nil
	}
}

// SetViewport updates the pixel projection
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}
