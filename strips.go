package main

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"
)

// DeviceTier is a coarse guess of the device from the window width. Smaller
// devices get fewer, wider strips and coarser vertical steps.
type DeviceTier int64

const (
	TierMobile DeviceTier = iota
	TierTablet
	TierDesktop
)

func TierForWidth(width float64) DeviceTier {
	switch {
	case width < 600:
		return TierMobile
	case width < 1024:
		return TierTablet
	default:
		return TierDesktop
	}
}

func (t DeviceTier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

type StripParams struct {
	// Base is the average strip width, used to decide how many strips fit.
	Base     float64
	Min      float64
	Max      float64
	YStep    int
	SpeedMin float64
	SpeedMax float64
}

var StripTiers = [...]StripParams{
	TierMobile:  {Base: 28, Min: 16, Max: 40, YStep: 6, SpeedMin: 0.0005, SpeedMax: 0.0015},
	TierTablet:  {Base: 22, Min: 10, Max: 32, YStep: 4, SpeedMin: 0.0008, SpeedMax: 0.002},
	TierDesktop: {Base: 18, Min: 6, Max: 28, YStep: 3, SpeedMin: 0.001, SpeedMax: 0.003},
}

const (
	StripSpeedFactor = 3.0
	StripBaseHue     = 280.0
	StripHueRange    = 60.0
	StripSaturation  = 50.0
	StripBrightness  = 90.0
	StripAlpha       = 0.7
)

var StripBackground = colorful.Hsv(210, 0.30, 0.95)

type Strip struct {
	X     float64
	W     float64
	Phase float64
	Speed float64
}

// StripField is the ambient background of vertical color strips. Each strip
// is a column of cells whose hue drifts with Perlin noise.
type StripField struct {
	Rand
	Tier   DeviceTier
	Params StripParams
	Strips []Strip
	Width  int
	Height int
	noise  *perlin.Perlin
}

func NewStripField(seed int64, width, height int) (f StripField) {
	f.Rand = NewRand(seed)
	f.noise = perlin.NewPerlin(2, 2, 3, seed)
	f.Resize(width, height)
	return
}

// Resize picks the tier for the new width and generates new strips.
func (f *StripField) Resize(width, height int) {
	f.Width = width
	f.Height = height
	f.Tier = TierForWidth(float64(width))
	f.Params = StripTiers[f.Tier]

	count := int(float64(width) / f.Params.Base)
	f.Strips = make([]Strip, count)
	x := 0.0
	for i := range f.Strips {
		w := f.RFloat(f.Params.Min, f.Params.Max)
		f.Strips[i] = Strip{
			X:     x,
			W:     w,
			Phase: f.RFloat(0, 1000),
			Speed: f.RFloat(f.Params.SpeedMin, f.Params.SpeedMax),
		}
		x += w
	}
}

func (f *StripField) Step() {
	for i := range f.Strips {
		f.Strips[i].Phase += f.Strips[i].Speed * StripSpeedFactor
	}
}

// Noise returns smooth noise in [0, 1].
func (f *StripField) Noise(x, y, z float64) float64 {
	return Clamp((f.noise.Noise3D(x, y, z)+1)/2, 0, 1)
}

// CellColor is the opaque color of strip s at row y, already blended over
// the background.
func (f *StripField) CellColor(s *Strip, y float64) color.NRGBA {
	n := f.Noise(s.X*0.01, y*0.005, s.Phase)
	hue := math.Mod(StripBaseHue+math.Sin(n*2*math.Pi)*StripHueRange+360, 360)
	sat := (StripSaturation + n*20) / 100
	bri := Clamp((StripBrightness+math.Sin(s.Phase+y*0.01)*6)/100, 0, 1)
	c := StripBackground.BlendRgb(colorful.Hsv(hue, sat, bri), StripAlpha)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Render writes the field into pix, an RGBA buffer of Width x Height
// pixels.
func (f *StripField) Render(pix []byte) {
	r, g, b := StripBackground.RGB255()
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
	}

	step := max(f.Params.YStep, 1)
	for si := range f.Strips {
		s := &f.Strips[si]
		x0 := int(s.X)
		x1 := min(int(math.Ceil(s.X+s.W)), f.Width)
		if x0 >= f.Width {
			break
		}
		for y := 0; y < f.Height; y += step {
			c := f.CellColor(s, float64(y))
			y1 := min(y+step+1, f.Height)
			for py := y; py < y1; py++ {
				row := py * f.Width * 4
				for px := x0; px < x1; px++ {
					o := row + px*4
					pix[o], pix[o+1], pix[o+2], pix[o+3] = c.R, c.G, c.B, 255
				}
			}
		}
	}
}
