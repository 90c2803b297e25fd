// Package text bakes a font face into a single-channel glyph atlas and lays
// out strings as textured quads. GPU upload is left to the caller.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from the pen position to the bitmap's top-left)
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance float32
}

// Atlas is a baked glyph sheet for the printable ASCII range
type Atlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
	// LineHeight is the recommended baseline-to-baseline distance in pixels
	LineHeight float32
}

const (
	firstRune = rune(32)
	lastRune  = rune(126)
	atlasW    = 512
	padding   = 1
)

// BakeDefault bakes the embedded Go Regular font at size pixels.
func BakeDefault(size int) (*Atlas, error) {
	return Bake(goregular.TTF, size)
}

// Bake parses an OpenType/TrueType font and bakes printable ASCII at size pixels.
func Bake(fontBytes []byte, size int) (*Atlas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", size)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	// First pass: pack rows to find the atlas height
	offsetX, rowH, height := 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil || dr.Empty() {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if offsetX+w+padding > atlasW {
			height += rowH + padding
			offsetX, rowH = 0, 0
		}
		offsetX += w + padding
		if h > rowH {
			rowH = h
		}
	}
	height += rowH + padding

	img := image.NewAlpha(image.Rect(0, 0, atlasW, height))
	glyphs := make(map[rune]Glyph, int(lastRune-firstRune)+1)

	// Second pass: draw glyphs and record metrics
	offsetX, offsetY, rowH := 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		adv := float32(math.Round(float64(advance) / 64.0))
		if mask == nil || gw == 0 || gh == 0 {
			// Space: advance only
			glyphs[r] = Glyph{Advance: adv}
			continue
		}
		if offsetX+gw+padding > atlasW {
			offsetX = 0
			offsetY += rowH + padding
			rowH = 0
		}
		draw.Draw(img, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), mask, maskp, draw.Src)
		glyphs[r] = Glyph{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  adv,
		}
		offsetX += gw + padding
		if gh > rowH {
			rowH = gh
		}
	}

	metrics := face.Metrics()
	return &Atlas{
		Image:      img,
		Glyphs:     glyphs,
		LineHeight: float32(metrics.Height.Ceil()),
	}, nil
}

// Width returns the horizontal size of s in pixels at scale.
func (a *Atlas) Width(s string, scale float32) float32 {
	var w float32
	for _, r := range s {
		w += a.glyph(r).Advance * scale
	}
	return w
}

// Vertices lays s out with its baseline at (x, y) in top-left pixel space.
// Each glyph is two triangles of (x, y, u, v) vertices.
func (a *Atlas) Vertices(s string, x, y, scale float32) []float32 {
	size := a.Image.Bounds().Size()
	aw, ah := float32(size.X), float32(size.Y)

	verts := make([]float32, 0, len(s)*6*4)
	for _, r := range s {
		g := a.glyph(r)
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			verts = append(verts,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}

// glyph returns the glyph for r, falling back to space for missing runes
func (a *Atlas) glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	return a.Glyphs[' ']
}
