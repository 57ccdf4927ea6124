package main

const (
	CursorLerp          = 0.75
	CursorIdleFrames    = 10
	CursorMinWidth      = 1025
	CursorMoveThreshold = 0.5
	CursorPetals        = 6
)

// FlowerCursor is a small glowing flower that follows the pointer on wide
// windows, replacing the OS cursor.
type FlowerCursor struct {
	Pos        Pt
	Enabled    bool
	last       Pt
	idleFrames int
	started    bool
}

// Step follows pointer. It stops moving after the pointer has been still for
// CursorIdleFrames frames.
func (c *FlowerCursor) Step(pointer Pt, windowWidth float64) {
	c.Enabled = windowWidth >= CursorMinWidth
	if !c.started {
		c.Pos = pointer
		c.last = pointer
		c.started = true
	}

	d := pointer.Minus(c.last)
	if max(d.X, -d.X) > CursorMoveThreshold || max(d.Y, -d.Y) > CursorMoveThreshold {
		c.idleFrames = 0
		c.last = pointer
	} else {
		c.idleFrames++
	}

	if c.Active() {
		c.Pos = c.Pos.LerpTo(pointer, CursorLerp)
	}
}

// Active is true while the cursor still moves towards the pointer.
func (c *FlowerCursor) Active() bool {
	return c.idleFrames <= CursorIdleFrames
}
