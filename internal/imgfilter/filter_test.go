package imgfilter

import (
	"image"
	"image/color"
	"testing"
)

func solid(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestResetRestoresExactDefaults(t *testing.T) {
	s := State{Brightness: 37, Contrast: 180, Grayscale: 99, Sepia: 5}
	s.Reset()

	want := State{Brightness: 100, Contrast: 100, Grayscale: 0, Sepia: 0}
	if s != want {
		t.Fatalf("after Reset: %+v, want %+v", s, want)
	}
}

func TestNeutralStateLeavesPixelsUntouched(t *testing.T) {
	src := solid(color.RGBA{R: 17, G: 130, B: 201, A: 255}, 3, 3)
	out := Defaults().Apply(src)

	got := out.RGBAAt(1, 1)
	if got != (color.RGBA{R: 17, G: 130, B: 201, A: 255}) {
		t.Fatalf("neutral filter changed pixel: %+v", got)
	}
}

func TestBrightnessScalesChannels(t *testing.T) {
	src := solid(color.RGBA{R: 100, G: 40, B: 10, A: 255}, 1, 1)
	out := State{Brightness: 150, Contrast: 100}.Apply(src)

	got := out.RGBAAt(0, 0)
	want := color.RGBA{R: 150, G: 60, B: 15, A: 255}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestBrightnessClampsAtChannelBoundary(t *testing.T) {
	src := solid(color.RGBA{R: 200, G: 200, B: 200, A: 255}, 1, 1)
	out := State{Brightness: 200, Contrast: 100}.Apply(src)

	got := out.RGBAAt(0, 0)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Fatalf("overflow not clamped: %+v", got)
	}
}

// The raster contrast pivot is 127.5, the 8-bit equivalent of the CSS
// primitive's 0.5 midpoint, so both paths scale around the same gray.
func TestContrastPivotMatchesCSSMidpoint(t *testing.T) {
	src := solid(color.RGBA{R: 100, G: 127, B: 128, A: 255}, 1, 1)
	out := State{Brightness: 100, Contrast: 200}.Apply(src)

	got := out.RGBAAt(0, 0)
	want := color.RGBA{R: 73, G: 127, B: 129, A: 255}
	if got != want {
		t.Fatalf("contrast(200%%) = %+v, want %+v", got, want)
	}
}

func TestFullGrayscaleEqualizesChannels(t *testing.T) {
	src := solid(color.RGBA{R: 250, G: 10, B: 120, A: 255}, 1, 1)
	out := State{Brightness: 100, Contrast: 100, Grayscale: 100}.Apply(src)

	got := out.RGBAAt(0, 0)
	if got.R != got.G || got.G != got.B {
		t.Fatalf("grayscale(100%%) should equalize channels: %+v", got)
	}
}

func TestAlphaIsPreserved(t *testing.T) {
	src := solid(color.RGBA{R: 50, G: 50, B: 50, A: 77}, 1, 1)
	out := State{Brightness: 180, Contrast: 140, Sepia: 30}.Apply(src)

	if got := out.RGBAAt(0, 0).A; got != 77 {
		t.Fatalf("alpha = %d, want 77", got)
	}
}

// The channel order must be brightness first, sepia second. With the
// chosen source pixel, brightness overflows the red channel, so the
// clamped value feeds the sepia matrix; the reverse order would yield a
// clearly different red component.
func TestChannelOrderIsBrightnessThenSepia(t *testing.T) {
	src := solid(color.RGBA{R: 200, G: 10, B: 10, A: 255}, 2, 2)
	out := State{Brightness: 150, Contrast: 100, Sepia: 50}.Apply(src)

	got := out.RGBAAt(0, 0)
	want := color.RGBA{R: 185, G: 58, B: 47, A: 255}
	if got != want {
		t.Fatalf("got %+v, want %+v (brightness before sepia)", got, want)
	}

	// Sanity check that the reverse order really is distinguishable here.
	sepiaFirst := State{Brightness: 100, Contrast: 100, Sepia: 50}.Apply(src)
	reversed := State{Brightness: 150, Contrast: 100}.Apply(sepiaFirst)
	if reversed.RGBAAt(0, 0) == want {
		t.Fatalf("test pixel cannot distinguish channel order")
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	src := solid(color.RGBA{R: 33, G: 66, B: 99, A: 255}, 4, 4)
	s := State{Brightness: 120, Contrast: 90, Grayscale: 25, Sepia: 40}

	first := s.Apply(src)
	second := s.Apply(src)
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("pixel output differs across runs at index %d", i)
		}
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := solid(color.RGBA{R: 120, G: 120, B: 120, A: 255}, 1, 1)
	_ = State{Brightness: 10, Contrast: 200, Grayscale: 100, Sepia: 100}.Apply(src)

	if got := src.RGBAAt(0, 0); got != (color.RGBA{R: 120, G: 120, B: 120, A: 255}) {
		t.Fatalf("source image mutated: %+v", got)
	}
}

func TestCSSDescriptionKeepsChannelOrder(t *testing.T) {
	s := State{Brightness: 150, Contrast: 90, Grayscale: 10, Sepia: 50}
	want := "brightness(150%) contrast(90%) grayscale(10%) sepia(50%)"
	if got := s.CSS(); got != want {
		t.Fatalf("CSS() = %q, want %q", got, want)
	}
}
