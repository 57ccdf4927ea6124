package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HintTextSize     = 32.0
	TitleTextSize    = 72.0
	ButtonTextSize   = 18.0
	SliderLabelSize  = 16.0
	ScreenOverlay    = 150
	NHaloRays        = 60
	GlowYOffset      = -50.0
	CoinGlowAlpha    = 60.0
	OverlayAlpha     = 127.5
	WishTextboxRatio = 0.6
)

// screenDraws draws each screen onto the canvas. Screens that want trails
// only darken the canvas instead of clearing it.
var screenDraws = [NScreens]func(g *Gui, canvas *ebiten.Image){
	StartScreen:           (*Gui).DrawStartScreen,
	MainScreen:            (*Gui).DrawMainScreen,
	WishInputScreen:       (*Gui).DrawWishInputScreen,
	FloatingTextScreen:    (*Gui).DrawFloatingTextScreen,
	TowerTransitionScreen: (*Gui).DrawTowerTransitionScreen,
	TowerScreen:           (*Gui).DrawTowerScreen,
}

func (g *Gui) Draw(screen *ebiten.Image) {
	if g.width == 0 || g.height == 0 {
		return
	}
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.width, g.height)
		g.canvas.Fill(Black)
	}

	switch g.Sketch {
	case SketchStrips:
		g.DrawStrips(g.canvas)
	case SketchCoins:
		g.DrawCoinGrid(g.canvas)
	default:
		screenDraws[g.world.Screen](g, g.canvas)
	}

	// Exports capture the canvas only, without widgets or cursor.
	for _, kind := range g.pendingExports {
		g.Export(kind)
	}
	g.pendingExports = g.pendingExports[:0]

	screen.DrawImage(g.canvas, nil)
	if g.Sketch == SketchRitual {
		g.DrawWidgets(screen)
		if g.state != Live {
			g.DrawPlaybackInfo(screen)
		}
	}
	if g.cursor.Enabled {
		g.DrawFlowerCursor(screen)
	}
}

func (g *Gui) frame() int64 {
	return g.visWorld.FrameIdx
}

// fade darkens the whole canvas a little, leaving trails of what was drawn
// in previous frames.
func fade(dst *ebiten.Image, alpha uint8) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.NRGBA{A: alpha}, false)
}

func (g *Gui) DrawStartScreen(canvas *ebiten.Image) {
	canvas.Fill(Black)
	g.DrawText(canvas, "TAP TO START", 0, TitleTextSize, g.world.Center(), Gold)
}

func (g *Gui) DrawMainScreen(canvas *ebiten.Image) {
	w := &g.world
	canvas.Fill(Black)
	DrawSpriteStretched(canvas, g.imgOverlay, OverlayAlpha)
	g.DrawCoins(canvas)
	g.DrawHaloRays(canvas, w.Center(), math.Min(w.Width, w.Height)*0.4)
	DrawScaled(canvas, g.imgCarp, w.Center(), w.CarpScale, 0, 255)
	g.DrawGrain(canvas)

	alpha := Pulse(g.frame(), 0.05, 0, 50, 255)
	g.DrawText(canvas, "Tap the josspaper to continue the ceremony", 0,
		HintTextSize, Pt{w.Width / 2, w.Height - 60}, WithAlpha(White, alpha))
}

func (g *Gui) DrawCoins(canvas *ebiten.Image) {
	w := &g.world
	glow := Palette[w.GlowColor]
	for i := range w.Coins {
		c := &w.Coins[i]
		visible := c.Alpha / CoinTargetAlpha
		size := w.Sizes.Coin.Times(c.TargetScale)
		DrawSprite(canvas, g.imgDisc, Sprite{
			Center: c.Pos,
			Width:  size.X * 1.4,
			Height: size.Y * 1.4,
			Tint:   opaque(glow),
			Alpha:  CoinGlowAlpha * visible,
		})
		DrawSprite(canvas, g.imgCoin, Sprite{
			Center:   c.Pos,
			Width:    size.X,
			Height:   size.Y,
			Rotation: c.TargetAngle + math.Pi/2,
			Alpha:    255 * visible,
		})
	}
}

func (g *Gui) DrawHaloRays(canvas *ebiten.Image, center Pt, radius float64) {
	f := float64(g.frame())
	rotation := f * 0.002
	for i := range NHaloRays {
		angle := 2*math.Pi*float64(i)/NHaloRays + rotation
		length := radius * (0.8 + 0.2*math.Sin(f*0.05+float64(i)))
		alpha := 80 + 60*math.Sin(f*0.05+float64(i)*0.5)
		end := center.Polar(angle, length)
		vector.StrokeLine(canvas,
			float32(center.X), float32(center.Y), float32(end.X), float32(end.Y),
			2, color.NRGBA{R: 255, G: 220, B: 100, A: uint8(Clamp(alpha, 0, 255))}, true)
	}
}

func (g *Gui) DrawGrain(canvas *ebiten.Image) {
	if g.grain == nil || g.visWorld.GrainDirty {
		g.grain = ebiten.NewImage(g.width, g.height)
		g.grain.WritePixels(g.visWorld.GrainPixels(g.width, g.height))
	}
	canvas.DrawImage(g.grain, nil)
}

func (g *Gui) DrawWishInputScreen(canvas *ebiten.Image) {
	w := &g.world
	fade(canvas, 5)
	for i := range w.Clusters {
		g.DrawCluster(canvas, &w.Clusters[i])
	}
	fade(canvas, ScreenOverlay)

	center := w.Center()
	var boxH float64
	if w.IsPortrait() {
		// The box is turned sideways to fill a phone held upright.
		boxH = w.Width
		DrawSprite(canvas, g.imgTextBox, Sprite{
			Center:   center,
			Width:    w.Height,
			Height:   w.Width,
			Rotation: math.Pi / 2,
			Alpha:    255,
		})
	} else {
		size := ImageSize(g.imgTextBox)
		scale := fitScale(size, w.Width, w.Height, WishTextboxRatio)
		boxH = size.Y * scale
		DrawScaled(canvas, g.imgTextBox, center, scale, 0, 255)
	}

	g.DrawText(canvas, "WHAT DO YOU WISH FOR THIS NEW YEAR", 0, HintTextSize,
		Pt{center.X, center.Y - boxH*0.3}, Gold)

	wish := w.Wish.String()
	g.DrawText(canvas, wish, 0, HintTextSize, center, White)

	if g.frame()%60 < 30 {
		tw := g.MeasureText(0, HintTextSize, wish)
		x := float32(center.X + tw/2 + 5)
		y := float32(center.Y)
		vector.StrokeLine(canvas, x, y-20, x, y+20, 2, White, true)
	}
}

func (g *Gui) DrawCluster(canvas *ebiten.Image, c *FlowerCluster) {
	tint := Palette[c.Tint]
	DrawSprite(canvas, g.imgCharm, Sprite{
		Center: c.Pos,
		Width:  c.Size,
		Height: c.Size,
		Tint:   tint,
		Alpha:  c.Alpha,
	})
	for i := range c.Charms {
		DrawSprite(canvas, g.imgCharm, Sprite{
			Center: c.CharmPos(i),
			Width:  c.Charms[i].Size,
			Height: c.Charms[i].Size,
			Tint:   tint,
			Alpha:  c.Alpha,
		})
	}
}

func (g *Gui) DrawFloatingTextScreen(canvas *ebiten.Image) {
	w := &g.world
	fade(canvas, 40)
	for i := range w.Fragments {
		f := &w.Fragments[i]
		if !f.Visible() {
			continue
		}
		g.DrawText(canvas, f.Text, f.Font, f.Size, f.Pos,
			WithAlpha(Palette[f.Color], f.Alpha))
	}

	if !w.IsPortrait() {
		pulse := Pulse(g.frame(), 0.05, 0, 60, 255)
		alpha := math.Min(w.FooterAlpha, pulse)
		g.DrawText(canvas, "You can hover over the text to see it fade away", 0,
			HintTextSize, Pt{w.Width / 2, w.Height - 60}, WithAlpha(White, alpha))
	}
}

func (g *Gui) DrawTowerTransitionScreen(canvas *ebiten.Image) {
	fade(canvas, 5)
	g.DrawFlyingAssets(canvas)
	g.DrawHologramGlow(canvas, g.world.TowerProgress)
	g.DrawTower(canvas, g.world.TowerProgress)
}

func (g *Gui) DrawTowerScreen(canvas *ebiten.Image) {
	fade(canvas, 2)
	g.DrawFlyingAssets(canvas)
	g.DrawHologramGlow(canvas, 1)
	g.DrawTower(canvas, 1)
}

func (g *Gui) DrawFlyingAssets(canvas *ebiten.Image) {
	sizeFactor := g.widgets.AssetSize.Value
	for i := range g.world.FlyingAssets {
		a := &g.world.FlyingAssets[i]
		if a.Img >= len(g.imgFlying) {
			continue
		}
		DrawScaled(canvas, g.imgFlying[a.Img], a.Pos, a.ScaleBase*sizeFactor,
			a.Rotation, a.Alpha)
	}
}

// DrawHologramGlow draws the pulsing colored light behind the tower.
// progress in [0, 1] scales its strength.
func (g *Gui) DrawHologramGlow(canvas *ebiten.Image, progress float64) {
	w := &g.world
	f := float64(g.frame())
	center := w.Center().Plus(Pt{0, GlowYOffset})
	towerW := w.Sizes.Tower.X * w.TowerScale

	for i, c := range Palette {
		fi := float64(i)
		alpha := Map(math.Sin(f*0.03+fi*0.5), -1, 1, 30, 80) * progress
		radius := towerW*0.6 + math.Sin(f*0.05+fi*0.7)*20
		g.DrawDisc(canvas, center, radius*1.5, WithAlpha(c, alpha), ebiten.BlendLighter)
	}

	for i, ci := range g.visWorld.SmallGlowColors {
		fi := float64(i)
		alpha := Map(math.Sin(f*0.02+fi*0.3), -1, 1, 10, 40) * progress
		shift := Pt{math.Sin(f*0.04+fi) * 30, math.Cos(f*0.03+fi) * 15}
		diameter := towerW * 0.6 * g.visWorld.SmallGlowSizes[i]
		g.DrawDisc(canvas, center.Plus(shift), diameter,
			WithAlpha(Palette[ci], alpha), ebiten.BlendLighter)
	}
}

func (g *Gui) DrawTower(canvas *ebiten.Image, progress float64) {
	DrawScaled(canvas, g.imgTower, g.world.Center(), g.world.TowerScale, 0,
		255*progress)
}

func (g *Gui) DrawWidgets(screen *ebiten.Image) {
	for i := range g.widgets.Buttons {
		b := &g.widgets.Buttons[i]
		if !b.Visible {
			continue
		}
		accent := Gold
		if ButtonId(i) == ButtonReset {
			accent = Teal
		}
		r := b.Bounds
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Width()), float32(r.Height()), color.NRGBA{A: 153}, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Width()), float32(r.Height()), 1, accent, false)
		g.DrawText(screen, b.Label, 0, ButtonTextSize, r.Center(), accent)
	}

	if !g.widgets.SlidersVisible {
		return
	}
	box := g.widgets.SliderBox
	vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y),
		float32(box.Width()), float32(box.Height()), color.NRGBA{A: 128}, false)
	vector.StrokeRect(screen, float32(box.Min.X), float32(box.Min.Y),
		float32(box.Width()), float32(box.Height()), 2, Gold, false)

	g.drawSlider(screen, &g.widgets.AssetSize, Gold,
		"Drag the bar to find out what you are really praying for")
	g.drawSlider(screen, &g.widgets.Reverb, Palette[0],
		"Drag to see the sound feel")
}

func (g *Gui) drawSlider(screen *ebiten.Image, s *Slider, accent color.NRGBA,
	label string) {
	t := s.Track
	labelPos := Pt{t.Center().X, t.Min.Y - 30}
	g.DrawText(screen, label, 0, SliderLabelSize, labelPos, White)

	y := float32(t.Center().Y)
	vector.StrokeLine(screen, float32(t.Min.X), y, float32(t.Max.X), y, 4,
		color.NRGBA{R: 120, G: 120, B: 120, A: 255}, true)
	knob := s.KnobPos()
	vector.StrokeLine(screen, float32(t.Min.X), y, float32(knob.X), y, 4, accent, true)
	vector.DrawFilledCircle(screen, float32(knob.X), float32(knob.Y), 9, accent, true)
}

func (g *Gui) DrawPlaybackInfo(screen *ebiten.Image) {
	status := "playing"
	if g.playbackPaused {
		status = "paused"
	}
	msg := fmt.Sprintf("frame %d/%d %s", g.frameIdx, len(g.playthrough.History), status)
	g.DrawText(screen, msg, 0, ButtonTextSize, Pt{160, 90}, White)
	vector.DrawFilledCircle(screen, float32(g.pointer.X), float32(g.pointer.Y),
		8, Palette[2], true)
}

func (g *Gui) DrawFlowerCursor(screen *ebiten.Image) {
	p := g.cursor.Pos
	for i := range CursorPetals {
		angle := 2 * math.Pi / CursorPetals * float64(i+1)
		g.DrawDisc(screen, p.Polar(angle, 18), 40,
			color.NRGBA{R: 255, G: 220, B: 120, A: 40}, ebiten.BlendLighter)
	}
	g.DrawDisc(screen, p, 18, color.NRGBA{R: 255, G: 140, B: 200, A: 160},
		ebiten.BlendLighter)
	g.DrawDisc(screen, p, 4, White, ebiten.BlendLighter)
}

func (g *Gui) DrawStrips(canvas *ebiten.Image) {
	if len(g.stripPixels) != g.width*g.height*4 {
		return
	}
	g.strips.Render(g.stripPixels)
	canvas.WritePixels(g.stripPixels)
}

func (g *Gui) DrawCoinGrid(canvas *ebiten.Image) {
	canvas.Clear()
	for i := range g.coinGrid.Icons {
		ic := &g.coinGrid.Icons[i]
		DrawSprite(canvas, g.imgOldCoin, Sprite{
			Center:   ic.Pos,
			Width:    ic.Size,
			Height:   ic.Size,
			Rotation: ic.Angle,
			Alpha:    255,
		})
	}
}
