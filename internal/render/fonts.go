package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager parses the embedded typefaces once and hands out faces at
// arbitrary sizes. Overlay font-family names from the editor are mapped
// onto the embedded set; unknown families fall back to the regular face.
type FontManager struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewFontManager parses the embedded fonts.
func NewFontManager() (*FontManager, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &FontManager{regular: regular, bold: bold}, nil
}

// Face returns a font.Face for the given family name at size pixels.
func (fm *FontManager) Face(family string, size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}

	parsed := fm.regular
	switch family {
	case "Inter-Bold", "Arial Black", "Impact":
		parsed = fm.bold
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
