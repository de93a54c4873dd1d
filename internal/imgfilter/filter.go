// Package imgfilter applies the editor's image adjustments: brightness,
// contrast, grayscale and sepia. The same channel order is used for the
// live preview description (CSS string) and for export rasterization, so
// the two paths stay order-compatible.
package imgfilter

import (
	"fmt"
	"image"
	"image/draw"
)

// Channel defaults.
const (
	DefaultBrightness = 100
	DefaultContrast   = 100
	DefaultGrayscale  = 0
	DefaultSepia      = 0
)

// Contrast scales channels around mid-gray. CSS contrast pivots at 0.5 in
// unit scale, which is 127.5 in 8-bit channels.
const contrastPivot = 127.5

// State is one record of the four independent filter channels, all in
// percent. Brightness and contrast default to 100 (documented range
// 0-200), grayscale and sepia to 0 (range 0-100). Values outside the
// documented ranges are accepted; the math clamps only at the 8-bit
// channel boundary.
type State struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Grayscale  float64 `json:"grayscale"`
	Sepia      float64 `json:"sepia"`
}

// Defaults returns the neutral filter state.
func Defaults() State {
	return State{
		Brightness: DefaultBrightness,
		Contrast:   DefaultContrast,
		Grayscale:  DefaultGrayscale,
		Sepia:      DefaultSepia,
	}
}

// Reset restores all four channels to their defaults atomically.
func (s *State) Reset() {
	*s = Defaults()
}

// IsNeutral reports whether applying the state would leave pixels unchanged.
func (s State) IsNeutral() bool {
	return s == Defaults()
}

// CSS renders the state as a CSS filter description in the pipeline's
// fixed channel order: brightness, contrast, grayscale, sepia.
func (s State) CSS() string {
	return fmt.Sprintf("brightness(%g%%) contrast(%g%%) grayscale(%g%%) sepia(%g%%)",
		s.Brightness, s.Contrast, s.Grayscale, s.Sepia)
}

// Apply composites the filter stack over src and returns the result as a
// new RGBA image. Channels run in the fixed order brightness -> contrast
// -> grayscale -> sepia; alpha is preserved.
func (s State) Apply(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	if s.IsNeutral() {
		return dst
	}

	brightness := s.Brightness / 100
	contrast := s.Contrast / 100
	grayAmount := clamp01(s.Grayscale / 100)
	sepiaAmount := clamp01(s.Sepia / 100)

	// Each stage clamps to the displayable range before the next one runs,
	// matching sequential raster filtering: without this, brightness
	// overflow would leak into the sepia matrix and change the output.
	pix := dst.Pix
	for i := 0; i < len(pix); i += 4 {
		r := float64(pix[i])
		g := float64(pix[i+1])
		b := float64(pix[i+2])

		r = clamp255(r * brightness)
		g = clamp255(g * brightness)
		b = clamp255(b * brightness)

		r = clamp255((r-contrastPivot)*contrast + contrastPivot)
		g = clamp255((g-contrastPivot)*contrast + contrastPivot)
		b = clamp255((b-contrastPivot)*contrast + contrastPivot)

		if grayAmount > 0 {
			luma := 0.2126*r + 0.7152*g + 0.0722*b
			r = r + (luma-r)*grayAmount
			g = g + (luma-g)*grayAmount
			b = b + (luma-b)*grayAmount
		}

		if sepiaAmount > 0 {
			sr := 0.393*r + 0.769*g + 0.189*b
			sg := 0.349*r + 0.686*g + 0.168*b
			sb := 0.272*r + 0.534*g + 0.131*b
			r = r + (sr-r)*sepiaAmount
			g = g + (sg-g)*sepiaAmount
			b = b + (sb-b)*sepiaAmount
		}

		pix[i] = clampByte(r)
		pix[i+1] = clampByte(g)
		pix[i+2] = clampByte(b)
	}

	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
