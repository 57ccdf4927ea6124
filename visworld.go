package main

const GrainDensity = 0.15

// VisWorld is a world parallel to World that holds "visual logic": state that
// only matters for drawing, like the grain texture or the colors of the
// flickering glows. Draw() relies on the information in VisWorld to draw
// things, just like it relies on World.
//
// VisWorld has its own Rand so that drawing never consumes numbers from the
// World's Rand. Otherwise a replay with a different frame rate or window
// would diverge.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function.
type VisWorld struct {
	Rand
	FrameIdx int64
	// GrainDirty is set when the grain texture must be regenerated.
	GrainDirty bool
	// SmallGlowColors are the palette indices of the small glows moving
	// around the tower. They change every frame.
	SmallGlowColors [3]int
	SmallGlowSizes  [3]float64
}

func NewVisWorld(seed int64) (v VisWorld) {
	v.Rand = NewRand(seed)
	v.GrainDirty = true
	return v
}

func (v *VisWorld) Step(w *World) {
	v.FrameIdx++
	for _, c := range w.Cues {
		if c.Kind == CueRegenerateGrain {
			v.GrainDirty = true
		}
	}

	for i := range v.SmallGlowColors {
		v.SmallGlowColors[i] = v.RIndex(len(Palette))
		v.SmallGlowSizes[i] = v.RFloat(0.8, 1.2)
	}
}

// GrainPixels returns an RGBA buffer of width x height pixels where about
// GrainDensity of the pixels are half transparent black and the rest are
// fully transparent.
func (v *VisWorld) GrainPixels(width, height int) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		if v.RChance(GrainDensity) {
			pix[i+3] = 128
		}
	}
	v.GrainDirty = false
	return pix
}
