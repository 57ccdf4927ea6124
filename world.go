package main

import "math"

// Ritual rules
// - The ritual is a fixed sequence of screens, see Screen.
// - Every screen owns a pool of animated entities (coins, clusters, text
// fragments, flying assets). Pools are plain slices mutated once per Step.
// - The World never draws and never plays sounds. Anything the outside needs
// to react to (sounds, regenerating textures) is emitted as a Cue during
// Step and consumed by the Gui right after.
// - All timing comes from PlayerInput.NowMs and all randomness from the
// World's Rand, so the same Playthrough always produces the same World.

const (
	// ReferenceWidth is the canvas width the layout constants were tuned for.
	ReferenceWidth = 1920.0

	CarpIntroScale    = 0.1
	CarpLerp          = 0.05
	CarpCanvasFactor  = 0.6
	TowerCanvasFactor = 0.7

	FloatingTextTimeoutMs = int64(18000)
	TowerTransitionMs     = int64(10000)

	// NTypingSounds is how many different key press sounds the Gui loads.
	NTypingSounds = 10
)

// Sizes holds the pixel sizes of the images that influence layout or
// hit-tests. The World only needs the sizes, never the images themselves.
type Sizes struct {
	Carp   Pt
	Tower  Pt
	Coin   Pt
	Flying []Pt
}

// TextMeasurer returns the width in pixels of s drawn with the given font
// index and size.
type TextMeasurer func(font int, size float64, s string) float64

type PlayerInput struct {
	NowMs          int64   `yaml:"NowMs"`
	Width          float64 `yaml:"Width"`
	Height         float64 `yaml:"Height"`
	Pointer        Pt      `yaml:"Pointer"`
	Pressed        bool    `yaml:"Pressed"`
	Typed          string  `yaml:"Typed"`
	DeletePressed  bool    `yaml:"DeletePressed"`
	DeleteReleased bool    `yaml:"DeleteReleased"`
	EnterPressed   bool    `yaml:"EnterPressed"`
	Reset          bool    `yaml:"Reset"`
}

type World struct {
	Rand
	Screen    Screen
	EnteredMs int64
	NowMs     int64
	FrameIdx  int64
	Width     float64
	Height    float64
	Sizes     Sizes
	Measure   TextMeasurer
	NFonts    int

	CarpScale       float64
	CarpTargetScale float64
	TowerScale      float64
	TowerProgress   float64
	// GlowColor is the palette color behind every coin, chosen once per run.
	GlowColor       int

	CoinsStartMs int64
	Coins        []Coin
	Clusters     []FlowerCluster
	Fragments    []Fragment
	FlyingAssets []FlyingAsset

	Wish          WishBuffer
	SubmittedWish string
	// FooterAlpha is the opacity of the hint shown under the floating text.
	FooterAlpha   float64

	// Cues emitted during the last Step.
	Cues []Cue
}

func NewWorld(seed int64, width, height float64, sizes Sizes,
	measure TextMeasurer, nFonts int) (w World) {
	w.Rand = NewRand(seed)
	w.Sizes = sizes
	w.Measure = measure
	w.NFonts = max(nFonts, 1)
	w.GlowColor = w.RIndex(len(Palette))
	w.Screen = StartScreen
	w.CarpScale = CarpIntroScale
	w.setCanvasSize(width, height)
	w.LayoutCoins()
	return
}

func (w *World) Step(input PlayerInput) {
	w.Cues = w.Cues[:0]
	w.NowMs = input.NowMs
	w.FrameIdx++

	if input.Width > 0 && input.Height > 0 &&
		(input.Width != w.Width || input.Height != w.Height) {
		w.Resize(input.Width, input.Height)
	}

	if input.Reset {
		w.Reset()
		return
	}

	if input.Pressed {
		w.Emit(CueClick)
	}

	screenLogics[w.Screen].Step(w, input)

	Assert(w.Screen.Valid())
	Assert(len(w.FlyingAssets) == 0 || len(w.FlyingAssets) == NFlyingAssets)
}

// Transition moves the ritual to screen to. Exit actions of the current
// screen run first, then the entry actions of the new one. Transitioning to
// the current screen does nothing and returns false.
func (w *World) Transition(to Screen) bool {
	if to == w.Screen {
		return false
	}
	from := w.Screen
	screenLogics[from].Exit(w)
	w.Screen = to
	w.EnteredMs = w.NowMs
	screenLogics[to].Enter(w)
	w.Cues = append(w.Cues, Cue{Kind: CueScreenChanged, Index: int(from)})
	return true
}

// Reset abandons the ritual wherever it is and goes back to the start screen
// with empty pools and silence.
func (w *World) Reset() {
	from := w.Screen
	w.Emit(CueStopAll)
	w.Screen = StartScreen
	w.EnteredMs = w.NowMs
	w.Wish.Clear()
	w.SubmittedWish = ""
	w.Fragments = nil
	w.FlyingAssets = nil
	w.Clusters = nil
	w.Coins = nil
	w.TowerProgress = 0
	w.CarpScale = CarpIntroScale
	w.LayoutCoins()
	w.Emit(CueRegenerateGrain)
	w.Cues = append(w.Cues, Cue{Kind: CueScreenChanged, Index: int(from)})
}

// Resize re-derives everything that depends on the canvas size. The current
// screen is left alone.
func (w *World) Resize(width, height float64) {
	w.setCanvasSize(width, height)
	w.LayoutCoins()
	w.Emit(CueRegenerateGrain)
}

func (w *World) setCanvasSize(width, height float64) {
	w.Width = width
	w.Height = height
	w.CarpTargetScale = fitScale(w.Sizes.Carp, width, height, CarpCanvasFactor)
	w.TowerScale = fitScale(w.Sizes.Tower, width, height, TowerCanvasFactor)
}

// fitScale returns the scale at which an image of size img fills at most
// factor of the canvas in both directions.
func fitScale(img Pt, width, height, factor float64) float64 {
	if img.X <= 0 || img.Y <= 0 {
		return 1
	}
	return math.Min(width*factor/img.X, height*factor/img.Y)
}

// WidthRatio is the canvas width relative to ReferenceWidth. Most sizes in
// the ritual scale with it.
func (w *World) WidthRatio() float64 {
	return w.Width / ReferenceWidth
}

func (w *World) Center() Pt {
	return Pt{w.Width / 2, w.Height / 2}
}

// CarpBounds is the box covered by the centerpiece at its current animated
// scale.
func (w *World) CarpBounds() Rectangle {
	return CenteredRectangle(w.Center(),
		w.Sizes.Carp.X*w.CarpScale,
		w.Sizes.Carp.Y*w.CarpScale)
}

// IsPortrait is true on tall canvases, which is how phones are detected.
func (w *World) IsPortrait() bool {
	return w.Width < w.Height
}

func (w *World) Emit(kind CueKind) {
	w.Cues = append(w.Cues, Cue{Kind: kind})
}
