// Package text derives cell metrics from a monospace font. The window layer
// converts pointer pixels to logical cells through an injectable scale; this
// package supplies that scale from real font metrics instead of the
// placeholder constant.
package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// CellMetrics is the pixel size of one terminal-style cell.
type CellMetrics struct {
	Width  float64 // advance of a glyph
	Height float64 // ascent + descent
}

// Measure computes cell metrics from a font face, using 'M' for the advance
// (any glyph works for a true monospace face).
func Measure(face font.Face) CellMetrics {
	m := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = m.Height
	}
	return CellMetrics{
		Width:  fixedToFloat(adv),
		Height: fixedToFloat(m.Ascent + m.Descent),
	}
}

// LoadTTF parses a TTF/OTF file and measures it at the given pixel size.
func LoadTTF(path string, sizePx float64) (CellMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CellMetrics{}, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return CellMetrics{}, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return CellMetrics{}, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	return Measure(face), nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
