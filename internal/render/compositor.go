// Package render bakes an editing session into pixels: the source image
// at its native resolution, the filter stack, and every text overlay
// mapped from normalized coordinates onto the export surface.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"craftdeck/internal/geometry"
	"craftdeck/internal/imgfilter"
	"craftdeck/internal/overlay"

	_ "image/gif"
	_ "image/png"
)

// ErrSourceBlocked means the source image's pixel data could not be
// obtained (unreachable or undecodable reference). The export produces no
// partial artifact in that case.
var ErrSourceBlocked = errors.New("source image pixels unavailable")

// DefaultJPEGQuality matches the editor's lossy download encoding.
const DefaultJPEGQuality = 90

// Compositor renders export artifacts for image sessions.
type Compositor struct {
	fonts   *FontManager
	quality int
}

// NewCompositor builds a compositor with embedded fonts and the default
// JPEG quality.
func NewCompositor() (*Compositor, error) {
	fonts, err := NewFontManager()
	if err != nil {
		return nil, err
	}
	return &Compositor{fonts: fonts, quality: DefaultJPEGQuality}, nil
}

// Decode parses raw source image bytes. Failures are reported as
// ErrSourceBlocked since the pipeline cannot continue without pixels.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceBlocked, err)
	}
	return img, nil
}

// Composite runs the full image-export pipeline over the decoded source:
// the filter stack first, then each overlay drawn at its normalized
// position mapped to the source's native resolution. screen is the
// on-screen container the overlays were authored against; font sizes are
// scaled by nativeWidth/screenWidth so exported text keeps its on-screen
// proportion.
func (c *Compositor) Composite(
	src image.Image,
	filters imgfilter.State,
	overlays []overlay.TextOverlay,
	screen geometry.Bounds,
) (*image.RGBA, error) {
	canvas := filters.Apply(src)

	native := geometry.Bounds{
		Width:  float64(canvas.Bounds().Dx()),
		Height: float64(canvas.Bounds().Dy()),
	}
	scale := geometry.ScaleFactor(screen, native)

	for _, o := range overlays {
		pos := geometry.ToAbsolute(o.Position(), native)
		face, err := c.fonts.Face(o.FontFamily, o.FontSize*scale)
		if err != nil {
			return nil, fmt.Errorf("overlay %s: %w", o.ID, err)
		}
		drawText(canvas, o.Text, pos, parseHexColor(o.Color), face)
	}

	return canvas, nil
}

// EncodeJPEG serializes the composited surface to the lossy download
// format.
func (c *Compositor) EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// drawText draws a single line with a vertical-middle baseline: the
// overlay's y coordinate is the middle of the rendered glyphs, matching
// the on-screen anchor.
func drawText(dst *image.RGBA, text string, at geometry.Point, col color.Color, face font.Face) {
	metrics := face.Metrics()
	middleOffset := (metrics.Ascent - metrics.Descent) / 2

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(at.X),
			Y: floatToFixed(at.Y) + middleOffset,
		},
	}
	drawer.DrawString(text)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

// parseHexColor converts "#rrggbb" to an opaque RGBA; anything else maps
// to black, the overlay default.
func parseHexColor(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{A: 255}
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
