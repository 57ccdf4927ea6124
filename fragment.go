package main

const (
	NFragments          = 120
	FragmentCutChance   = 0.3
	FragmentFade        = 1.2
	FragmentExplodeFade = 8.0
	FooterLerp          = 0.15
)

// Fragment is a copy (or a prefix) of the submitted wish floating up the
// screen. Hovering it with the pointer makes it explode, which only means it
// fades much faster.
type Fragment struct {
	Pos      Pt
	Color    int
	Font     int
	Size     float64
	Text     string
	Alpha    float64
	Speed    float64
	Exploded bool
}

// Visible is true while the fragment can still be seen: it has some opacity
// left and it has not scrolled above the top edge.
func (f *Fragment) Visible() bool {
	return f.Alpha > 0 && f.Pos.Y+f.Size > 0
}

func (w *World) GenerateFragments(wish string) {
	runes := []rune(wish)
	w.Fragments = make([]Fragment, NFragments)
	for i := range w.Fragments {
		txt := wish
		if len(runes) > 1 && w.RChance(FragmentCutChance) {
			cut := int(w.RFloat(1, float64(len(runes))))
			txt = string(runes[:cut])
		}
		w.Fragments[i] = Fragment{
			Pos:   Pt{w.RFloat(0, w.Width), w.RFloat(0, w.Height)},
			Color: w.RIndex(len(Palette)),
			Font:  w.RIndex(w.NFonts),
			Size:  w.RFloat(28, 120),
			Text:  txt,
			Alpha: 255,
			Speed: w.RFloat(0.5, 1.5),
		}
	}
	w.FooterAlpha = 255
}

// FragmentBounds is the box used for hover detection, centered on the fragment.
func (w *World) FragmentBounds(f *Fragment) Rectangle {
	width := 0.0
	if w.Measure != nil {
		width = w.Measure(f.Font, f.Size, f.Text)
	}
	return CenteredRectangle(f.Pos, width, f.Size)
}

// StepFragments moves all fragments and returns whether any of them is still
// visible.
func (w *World) StepFragments(pointer Pt) (anyVisible bool) {
	sumAlpha := 0.0
	nVisible := 0
	for i := range w.Fragments {
		f := &w.Fragments[i]
		f.Pos.Y -= f.Speed

		if !f.Exploded && w.FragmentBounds(f).StrictlyContainsPt(pointer) {
			f.Exploded = true
		}

		if f.Exploded {
			f.Alpha -= FragmentExplodeFade
		} else {
			f.Alpha -= FragmentFade
		}

		if f.Visible() {
			anyVisible = true
			sumAlpha += f.Alpha
			nVisible++
		}
	}

	// The hint at the bottom fades together with the fragments.
	avgAlpha := 0.0
	if nVisible > 0 {
		avgAlpha = sumAlpha / float64(nVisible)
	}
	w.FooterAlpha = Lerp(w.FooterAlpha, avgAlpha, FooterLerp)
	return
}
