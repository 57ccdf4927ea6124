package main

const (
	NFlyingAssets    = 150
	FlyingAlphaStep  = 2.0
	FlyingMaxStartMs = TowerTransitionMs / 2
)

// FlyingAsset is a joss paper, coin or charm floating up during the tower
// transition. It never dies: when it leaves the top of the canvas it starts
// again from below the bottom edge with a new speed and spin.
type FlyingAsset struct {
	Img           int
	Pos           Pt
	Speed         float64
	Rotation      float64
	RotationSpeed float64
	Alpha         float64
	ScaleBase     float64
	StartDelayMs  int64
}

func (w *World) GenerateFlyingAssets() {
	nImgs := max(len(w.Sizes.Flying), 1)
	ratio := w.WidthRatio()
	w.FlyingAssets = make([]FlyingAsset, NFlyingAssets)
	for i := range w.FlyingAssets {
		w.FlyingAssets[i] = FlyingAsset{
			Img:           w.RIndex(nImgs),
			Pos:           Pt{w.RFloat(0, w.Width), w.Height + w.RFloat(20, 200)},
			Speed:         w.RFloat(1, 3),
			RotationSpeed: w.RFloat(-0.01, 0.01),
			ScaleBase:     w.RFloat(0.08, 0.2) * ratio,
			StartDelayMs:  int64(w.RFloat(0, float64(FlyingMaxStartMs))),
		}
	}
}

func (w *World) flyingImgSize(a *FlyingAsset) Pt {
	if a.Img < len(w.Sizes.Flying) {
		return w.Sizes.Flying[a.Img]
	}
	return Pt{}
}

// StepFlyingAssets moves every asset whose start delay has passed. elapsedMs
// is the time since the tower transition started.
func (w *World) StepFlyingAssets(elapsedMs int64) {
	for i := range w.FlyingAssets {
		a := &w.FlyingAssets[i]
		if elapsedMs <= a.StartDelayMs {
			continue
		}
		a.Pos.Y -= a.Speed
		a.Alpha = min(255, a.Alpha+FlyingAlphaStep)

		if a.Pos.Y < -w.flyingImgSize(a).Y*a.ScaleBase {
			a.Pos = Pt{w.RFloat(0, w.Width), w.Height + w.RFloat(20, 200)}
			a.Alpha = 0
			a.Speed = w.RFloat(1, 3)
			a.RotationSpeed = w.RFloat(-0.01, 0.01)
		}
		a.Rotation += a.RotationSpeed
	}
}
