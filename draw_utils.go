package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Sprite says how to draw an image centered on a point.
type Sprite struct {
	Center   Pt
	Width    float64
	Height   float64
	Rotation float64
	// Tint multiplies the image colors. The zero value draws the image as is.
	Tint  color.Color
	Alpha float64
	Blend ebiten.Blend
}

// DrawSprite draws img resized to s.Width x s.Height, rotated around its
// center and with its center on s.Center. s.Alpha is on the 0-255 scale.
func DrawSprite(dst *ebiten.Image, img *ebiten.Image, s Sprite) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 || s.Alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(size.X)/2, -float64(size.Y)/2)
	op.GeoM.Scale(s.Width/float64(size.X), s.Height/float64(size.Y))
	op.GeoM.Rotate(s.Rotation)
	op.GeoM.Translate(s.Center.X, s.Center.Y)
	if s.Tint != nil {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	op.ColorScale.ScaleAlpha(float32(Clamp(s.Alpha, 0, 255) / 255))
	op.Blend = s.Blend
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// DrawScaled draws img centered on center at scale times its size.
func DrawScaled(dst *ebiten.Image, img *ebiten.Image, center Pt, scale float64,
	rotation float64, alpha float64) {
	size := ImageSize(img)
	DrawSprite(dst, img, Sprite{
		Center:   center,
		Width:    size.X * scale,
		Height:   size.Y * scale,
		Rotation: rotation,
		Alpha:    alpha,
	})
}

// DrawSpriteStretched draws img over the whole of dst.
func DrawSpriteStretched(dst *ebiten.Image, img *ebiten.Image, alpha float64) {
	b := dst.Bounds()
	DrawSprite(dst, img, Sprite{
		Center: Pt{float64(b.Dx()) / 2, float64(b.Dy()) / 2},
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
		Alpha:  alpha,
	})
}

// DrawDisc draws a filled circle using the disc texture, so that the circle
// can be blended additively.
func (g *Gui) DrawDisc(dst *ebiten.Image, center Pt, diameter float64,
	c color.NRGBA, blend ebiten.Blend) {
	DrawSprite(dst, g.imgDisc, Sprite{
		Center: center,
		Width:  diameter,
		Height: diameter,
		Tint:   opaque(c),
		Alpha:  float64(c.A),
		Blend:  blend,
	})
}

// DrawText draws s centered on pos. c's alpha is used as is.
func (g *Gui) DrawText(dst *ebiten.Image, s string, font int, size float64,
	pos Pt, c color.NRGBA) {
	if len(g.fonts) == 0 || s == "" || c.A == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, g.Face(font, size), op)
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}
