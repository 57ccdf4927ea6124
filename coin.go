package main

import "math"

const (
	CoinLerp        = 0.07
	CoinTargetAlpha = 100.0
	CoinDelayMs     = int64(40)
	CoinRingPauseMs = int64(400)
)

// Coin is one of the lucky charms that bloom in rings around the carp on the
// main screen. It starts at the center of the canvas, invisible, and once its
// delay has passed it eases towards its place in the ring. Coins never
// "arrive": they keep getting closer every frame.
type Coin struct {
	Pos         Pt
	Target      Pt
	TargetScale float64
	TargetAngle float64
	DelayMs     int64
	Alpha       float64
	TargetAlpha float64
}

// CoinRing describes one ring of coins.
type CoinRing struct {
	NCoins int
	// Offset is the distance between the edge of the carp and the ring, at
	// ReferenceWidth.
	Offset float64
	// Scale is the coin scale at ReferenceWidth.
	Scale float64
	// AngleShift rotates the whole ring, as a fraction of the angle between
	// two coins.
	AngleShift float64
}

var CoinRings = []CoinRing{
	{NCoins: 20, Offset: 180, Scale: 0.5},
	{NCoins: 28, Offset: 360, Scale: 0.4, AngleShift: 0.5},
	{NCoins: 36, Offset: 500, Scale: 0.35},
}

// LayoutCoins replaces all coins with fresh ones for the current canvas size.
// Rings bloom one after another: each coin waits a bit longer than the
// previous one and each ring waits a bit more for the previous ring.
func (w *World) LayoutCoins() {
	w.Coins = w.Coins[:0]
	center := w.Center()
	ratio := w.WidthRatio()
	carpRadius := w.Sizes.Carp.X * w.CarpTargetScale / 2
	delay := int64(0)
	for ringIdx, ring := range CoinRings {
		if ringIdx > 0 {
			delay += CoinRingPauseMs
		}
		radius := carpRadius + ring.Offset*ratio
		step := 2 * math.Pi / float64(ring.NCoins)
		for i := range ring.NCoins {
			angle := step*float64(i) + step*ring.AngleShift
			w.Coins = append(w.Coins, Coin{
				Pos:         center,
				Target:      center.Polar(angle, radius),
				TargetScale: ring.Scale * ratio,
				TargetAngle: angle,
				DelayMs:     delay,
				TargetAlpha: CoinTargetAlpha,
			})
			delay += CoinDelayMs
		}
	}
}

func (w *World) StepCoins() {
	elapsed := w.NowMs - w.CoinsStartMs
	for i := range w.Coins {
		c := &w.Coins[i]
		if elapsed <= c.DelayMs {
			continue
		}
		c.Pos = c.Pos.LerpTo(c.Target, CoinLerp)
		c.Alpha = Lerp(c.Alpha, c.TargetAlpha, CoinLerp)
	}
}
