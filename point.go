package main

import "math"

// Pt is a position or offset on the canvas, in pixels. Everything in the
// ritual moves by fractions of a pixel per frame so coordinates are floats.
type Pt struct {
	X float64
	Y float64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p *Pt) Add(other Pt) {
	p.X += other.X
	p.Y += other.Y
}

func (p Pt) Times(multiply float64) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

func (p Pt) To(other Pt) Pt {
	return Pt{other.X - p.X, other.Y - p.Y}
}

func (p Pt) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Pt) DistTo(other Pt) float64 {
	return p.To(other).Len()
}

// Polar returns the point at distance dist from p in the direction angle
// (radians, clockwise on screen because Y grows downwards).
func (p Pt) Polar(angle float64, dist float64) Pt {
	return Pt{p.X + math.Cos(angle)*dist, p.Y + math.Sin(angle)*dist}
}

// LerpTo moves p a fraction of the remaining distance towards target.
func (p Pt) LerpTo(target Pt, amount float64) Pt {
	return Pt{Lerp(p.X, target.X, amount), Lerp(p.Y, target.Y, amount)}
}
