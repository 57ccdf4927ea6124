package main

// Visual areas
// ------------
//
// The ritual fills the whole window: the canvas has exactly the size of the
// window, in pixels, and the World is told about every change of size through
// PlayerInput. There is no fixed game area and no letterboxing.
//
// During playback the canvas keeps the size the World was recorded with and
// ebitengine scales it to fit the window.

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if g.state != Live && g.world.Width > 0 && g.world.Height > 0 {
		screenWidth, screenHeight = int(g.world.Width), int(g.world.Height)
	} else {
		screenWidth, screenHeight = max(outsideWidth, 1), max(outsideHeight, 1)
	}

	if screenWidth != g.width || screenHeight != g.height {
		g.resize(screenWidth, screenHeight)
	}
	return
}

// resize re-derives everything on the Gui side that depends on the canvas
// size. The World resizes itself when it sees the new size in its input.
func (g *Gui) resize(width, height int) {
	g.width = width
	g.height = height
	g.canvas = nil
	g.grain = nil
	g.widgets.Layout(float64(width), float64(height))

	switch g.Sketch {
	case SketchStrips:
		if g.strips.Strips == nil {
			g.strips = NewStripField(g.playthrough.Seed, width, height)
		} else {
			g.strips.Resize(width, height)
		}
		g.stripPixels = make([]byte, width*height*4)
	case SketchCoins:
		g.coinGrid = NewCoinGrid(g.playthrough.Seed, float64(width), float64(height))
	}
}
