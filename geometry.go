package main

import "math"

// Rectangle is an axis-aligned box on the canvas. Min is the top-left corner
// and Max the bottom-right one.
type Rectangle struct {
	Min Pt
	Max Pt
}

func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

// CenteredRectangle returns the box of size width x height whose center is
// center. Most things in the ritual are drawn around their center.
func CenteredRectangle(center Pt, width, height float64) Rectangle {
	return Rectangle{
		Min: Pt{center.X - width/2, center.Y - height/2},
		Max: Pt{center.X + width/2, center.Y + height/2},
	}
}

func (r Rectangle) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// ContainsPt includes the edges of the rectangle.
func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// StrictlyContainsPt excludes the edges. Taps on the centerpiece use this
// one: a tap exactly on the border of the image does not count.
func (r Rectangle) StrictlyContainsPt(pt Pt) bool {
	return pt.X > r.Min.X && pt.X < r.Max.X && pt.Y > r.Min.Y && pt.Y < r.Max.Y
}

func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// Lerp moves from a towards b by the fraction amount of the distance between
// them. Calling it once per frame with a constant amount gives the
// decelerating "ease towards target" motion used everywhere in the ritual.
func Lerp(a, b, amount float64) float64 {
	return a + (b-a)*amount
}

// Map linearly maps v from [inMin, inMax] to [outMin, outMax], without
// clamping.
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Pulse maps a sine wave of the frame counter to [lo, hi]. Blinking hints and
// glows all use it.
func Pulse(frame int64, speed, offset, lo, hi float64) float64 {
	return Map(math.Sin(float64(frame)*speed+offset), -1, 1, lo, hi)
}
