// internal/ui/fonts.go
package ui

import (
	"fmt"

	"go-pendant/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Fonts hands out faces of a single family, one per size.
type Fonts struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// LoadFonts parses TrueType/OpenType data. A nil slice selects the bundled
// Go Regular sans face.
func LoadFonts(data []byte) (*Fonts, error) {
	if data == nil {
		data = goregular.TTF
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns the face for size, creating it on first use.
func (f *Fonts) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     config.FontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Measure returns the single-line size of s: advance width by line height.
func (f *Fonts) Measure(s string, size float64) (w, h float64, err error) {
	face, err := f.Face(size)
	if err != nil {
		return 0, 0, err
	}
	w, h = MeasureString(face, s)
	return w, h, nil
}

// MeasureString measures s set in face on a single line.
func MeasureString(face font.Face, s string) (w, h float64) {
	m := face.Metrics()
	return fixedToFloat(font.MeasureString(face, s)), fixedToFloat(m.Ascent + m.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
