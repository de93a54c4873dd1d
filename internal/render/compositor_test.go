package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"craftdeck/internal/geometry"
	"craftdeck/internal/imgfilter"
	"craftdeck/internal/overlay"
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// darkPixelNear reports whether any pixel in a window around (x, y) is
// substantially darker than the white background, i.e. text was drawn.
func darkPixelNear(img *image.RGBA, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			px, py := x+dx, y+dy
			if !(image.Point{X: px, Y: py}).In(img.Bounds()) {
				continue
			}
			c := img.RGBAAt(px, py)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				return true
			}
		}
	}
	return false
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	if !errors.Is(err, ErrSourceBlocked) {
		t.Fatalf("err = %v, want ErrSourceBlocked", err)
	}
}

func TestDecodeAcceptsPNG(t *testing.T) {
	img, err := Decode(pngBytes(t, whiteCanvas(8, 8)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestCompositeDrawsOverlayAtNativePosition(t *testing.T) {
	c, err := NewCompositor()
	if err != nil {
		t.Fatal(err)
	}

	src := whiteCanvas(400, 200)
	overlays := []overlay.TextOverlay{{
		ID:         "o1",
		Text:       "Hello",
		X:          40,
		Y:          55,
		Color:      "#000000",
		FontSize:   24,
		FontFamily: "Inter",
	}}

	out, err := c.Composite(src, imgfilter.Defaults(), overlays, geometry.Bounds{Width: 400, Height: 200})
	if err != nil {
		t.Fatalf("composite: %v", err)
	}

	// 40% of 400, 55% of 200 with a vertical-middle baseline.
	if !darkPixelNear(out, 160, 110, 16) {
		t.Fatalf("no text pixels near the mapped overlay position")
	}
	// A far corner must stay untouched white.
	if darkPixelNear(out, 390, 10, 6) {
		t.Fatalf("text leaked far from the overlay position")
	}
}

func TestCompositeScalesFontWithExportResolution(t *testing.T) {
	c, err := NewCompositor()
	if err != nil {
		t.Fatal(err)
	}

	// Native surface is 3x the on-screen container width.
	src := whiteCanvas(1200, 600)
	overlays := []overlay.TextOverlay{{
		ID: "o1", Text: "W", X: 10, Y: 50,
		Color: "#000000", FontSize: 20, FontFamily: "Inter",
	}}

	out, err := c.Composite(src, imgfilter.Defaults(), overlays, geometry.Bounds{Width: 400, Height: 200})
	if err != nil {
		t.Fatalf("composite: %v", err)
	}

	// A 60px glyph covers clearly more vertical extent than a 20px one:
	// scan the column band for the inked height.
	minY, maxY := -1, -1
	for y := 0; y < 600; y++ {
		for x := 100; x < 200; x++ {
			px := out.RGBAAt(x, y)
			if px.R < 128 {
				if minY < 0 {
					minY = y
				}
				maxY = y
			}
		}
	}
	if minY < 0 {
		t.Fatalf("glyph not drawn")
	}
	if height := maxY - minY; height < 30 {
		t.Fatalf("glyph height %dpx, want scaled-up text (>=30px)", height)
	}
}

func TestCompositeAppliesFilterStack(t *testing.T) {
	c, err := NewCompositor()
	if err != nil {
		t.Fatal(err)
	}

	src := whiteCanvas(10, 10)
	out, err := c.Composite(src, imgfilter.State{Brightness: 50, Contrast: 100}, nil, geometry.Bounds{Width: 10, Height: 10})
	if err != nil {
		t.Fatal(err)
	}

	got := out.RGBAAt(5, 5)
	want := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if got != want {
		t.Fatalf("filtered pixel = %+v, want %+v", got, want)
	}
}

func TestEncodeJPEGProducesDecodableArtifact(t *testing.T) {
	c, err := NewCompositor()
	if err != nil {
		t.Fatal(err)
	}

	data, err := c.EncodeJPEG(whiteCanvas(16, 16))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty artifact")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("artifact not decodable: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestParseHexColor(t *testing.T) {
	if got := parseHexColor("#ff8000"); got != (color.RGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("got %+v", got)
	}
	if got := parseHexColor("bogus"); got != (color.RGBA{A: 255}) {
		t.Errorf("invalid hex should map to black, got %+v", got)
	}
}
