package main

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of festive colors everything in the ritual is tinted
// with. The World refers to colors by their index in Palette.
var Palette = mustParsePalette("#951a2d", "#eabb47", "#ca3e9f", "#63228d", "#2d8d96")

var (
	Gold  = Palette[1]
	Teal  = Palette[4]
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.NRGBA{A: 255}
)

func mustParsePalette(hexes ...string) []color.NRGBA {
	colors := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		Check(err)
		r, g, b := c.RGB255()
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// WithAlpha returns c with its alpha replaced. alpha is on the 0-255 scale
// the animations use and is clamped.
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(Clamp(alpha, 0, 255))
	return c
}
