package main

import "math"

const (
	CoinGridSpacing = 100.0
	GridIconSnap    = 1.0
)

// GridIcon is a coin of the ambient grid. It flies from a random spot to its
// cell, snaps into place once close enough and then only spins.
type GridIcon struct {
	Pos       Pt
	Target    Pt
	Size      float64
	Speed     float64
	Angle     float64
	SpinSpeed float64
	Spinning  bool
}

type CoinGrid struct {
	Rand
	Icons  []GridIcon
	Width  float64
	Height float64
	Cols   int
	Rows   int
}

func NewCoinGrid(seed int64, width, height float64) (g CoinGrid) {
	g.Rand = NewRand(seed)
	g.Resize(width, height)
	return
}

// Resize lays out a fresh grid that covers the canvas with one extra row and
// column so the edges are never empty.
func (g *CoinGrid) Resize(width, height float64) {
	g.Width = width
	g.Height = height
	g.Cols = int(math.Ceil((width + CoinGridSpacing) / CoinGridSpacing))
	g.Rows = int(math.Ceil((height + CoinGridSpacing) / CoinGridSpacing))
	g.Icons = make([]GridIcon, 0, g.Cols*g.Rows)
	for y := range g.Rows {
		for x := range g.Cols {
			g.Icons = append(g.Icons, GridIcon{
				Pos: Pt{g.RFloat(0, width), g.RFloat(0, height)},
				Target: Pt{
					float64(x)*CoinGridSpacing + CoinGridSpacing/2,
					float64(y)*CoinGridSpacing + CoinGridSpacing/2,
				},
				Size:      g.RFloat(40, 80),
				Speed:     g.RFloat(0.02, 0.05),
				Angle:     g.RAngle(),
				SpinSpeed: g.RFloat(0.01, 0.05),
			})
		}
	}
}

func (g *CoinGrid) Step() {
	for i := range g.Icons {
		ic := &g.Icons[i]
		if !ic.Spinning {
			ic.Pos = ic.Pos.LerpTo(ic.Target, ic.Speed)
			if ic.Pos.DistTo(ic.Target) < GridIconSnap {
				ic.Pos = ic.Target
				ic.Spinning = true
			}
		}
		if ic.Spinning {
			ic.Angle += ic.SpinSpeed
		}
	}
}

// AllSettled is true once every icon reached its cell.
func (g *CoinGrid) AllSettled() bool {
	for i := range g.Icons {
		if !g.Icons[i].Spinning {
			return false
		}
	}
	return true
}
