package main

import "math"

// Widget layout, in canvas pixels.
const (
	ButtonWidth     = 150.0
	ButtonHeight    = 40.0
	ButtonMargin    = 16.0
	ButtonGap       = 8.0
	SliderBoxMargin = 30.0
	SliderBoxWidth  = 330.0
	SliderBoxHeight = 190.0
	SliderPadding   = 15.0
	SliderTrackH    = 16.0
)

// Slider is a horizontal range control. Value always lies in [Min, Max] and
// is a whole number of Steps away from Min.
type Slider struct {
	Min      float64
	Max      float64
	Step     float64
	Value    float64
	Track    Rectangle
	dragging bool
}

func NewSlider(min, max, step, value float64) Slider {
	s := Slider{Min: min, Max: max, Step: step}
	s.SetValue(value)
	return s
}

func (s *Slider) SetValue(v float64) {
	v = Clamp(v, s.Min, s.Max)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		v = Clamp(v, s.Min, s.Max)
	}
	s.Value = v
}

// Fraction is how far along the track the value is, in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) KnobPos() Pt {
	return Pt{
		Lerp(s.Track.Min.X, s.Track.Max.X, s.Fraction()),
		s.Track.Center().Y,
	}
}

func (s *Slider) setFromX(x float64) {
	f := 0.0
	if s.Track.Width() > 0 {
		f = (x - s.Track.Min.X) / s.Track.Width()
	}
	s.SetValue(Lerp(s.Min, s.Max, Clamp(f, 0, 1)))
}

// Press starts a drag if p is on the track and moves the knob there.
func (s *Slider) Press(p Pt) bool {
	grab := s.Track
	grab.Min.Y -= SliderTrackH
	grab.Max.Y += SliderTrackH
	if !grab.ContainsPt(p) {
		return false
	}
	s.dragging = true
	s.setFromX(p.X)
	return true
}

func (s *Slider) Drag(p Pt) {
	if s.dragging {
		s.setFromX(p.X)
	}
}

func (s *Slider) Release() {
	s.dragging = false
}

func (s *Slider) Dragging() bool {
	return s.dragging
}

type Button struct {
	Label   string
	Bounds  Rectangle
	Visible bool
}

func (b *Button) Hit(p Pt) bool {
	return b.Visible && b.Bounds.ContainsPt(p)
}

type ButtonId int64

const (
	ButtonSavePNG ButtonId = iota
	ButtonExportSVG
	ButtonReset
	NButtons
)

// WidgetAction is what a press on the widgets asks for.
type WidgetAction int64

const (
	// ActionNone means the press missed every widget and belongs to the
	// ritual.
	ActionNone WidgetAction = iota
	// ActionConsumed means a widget took the press but has nothing to report.
	ActionConsumed
	ActionSavePNG
	ActionExportSVG
	ActionReset
)

// Widgets are the controls drawn over the ritual: export buttons in the top
// right corner, the reset button in the bottom left and a box with the asset
// size and reverb sliders in the bottom right.
type Widgets struct {
	Buttons        [NButtons]Button
	AssetSize      Slider
	Reverb         Slider
	SliderBox      Rectangle
	SlidersVisible bool
}

func NewWidgets() (ws Widgets) {
	ws.Buttons[ButtonSavePNG] = Button{Label: "Save PNG", Visible: true}
	ws.Buttons[ButtonExportSVG] = Button{Label: "Export SVG", Visible: true}
	ws.Buttons[ButtonReset] = Button{Label: "Restart Ritual"}
	ws.AssetSize = NewSlider(0.1, 2.0, 0.01, 1.0)
	ws.Reverb = NewSlider(0, 1, 0.01, 0)
	return
}

// Layout places every widget for a canvas of the given size.
func (ws *Widgets) Layout(width, height float64) {
	right := width - ButtonMargin
	ws.Buttons[ButtonExportSVG].Bounds = NewRectangle(
		right-ButtonWidth, ButtonMargin, ButtonWidth, ButtonHeight)
	ws.Buttons[ButtonSavePNG].Bounds = NewRectangle(
		right-2*ButtonWidth-ButtonGap, ButtonMargin, ButtonWidth, ButtonHeight)
	ws.Buttons[ButtonReset].Bounds = NewRectangle(
		ButtonMargin, height-ButtonMargin-ButtonHeight, ButtonWidth+30, ButtonHeight)

	ws.SliderBox = NewRectangle(
		width-SliderBoxWidth-SliderBoxMargin,
		height-SliderBoxHeight-SliderBoxMargin,
		SliderBoxWidth, SliderBoxHeight)
	trackX := ws.SliderBox.Min.X + SliderPadding
	trackW := SliderBoxWidth - 2*SliderPadding
	ws.AssetSize.Track = NewRectangle(trackX, ws.SliderBox.Min.Y+70, trackW, SliderTrackH)
	ws.Reverb.Track = NewRectangle(trackX, ws.SliderBox.Min.Y+155, trackW, SliderTrackH)
}

// SetScreen shows the widgets that belong to screen s and hides the rest.
func (ws *Widgets) SetScreen(s Screen) {
	ws.Buttons[ButtonReset].Visible = s == FloatingTextScreen ||
		s == TowerTransitionScreen || s == TowerScreen
	ws.SlidersVisible = s == TowerScreen
	if !ws.SlidersVisible {
		ws.AssetSize.Release()
		ws.Reverb.Release()
	}
}

// Press routes a pointer press to the widget under p.
func (ws *Widgets) Press(p Pt) WidgetAction {
	switch {
	case ws.Buttons[ButtonSavePNG].Hit(p):
		return ActionSavePNG
	case ws.Buttons[ButtonExportSVG].Hit(p):
		return ActionExportSVG
	case ws.Buttons[ButtonReset].Hit(p):
		return ActionReset
	}

	if !ws.SlidersVisible {
		return ActionNone
	}
	if ws.AssetSize.Press(p) || ws.Reverb.Press(p) {
		return ActionConsumed
	}
	// The box itself swallows presses too.
	if ws.SliderBox.ContainsPt(p) {
		return ActionConsumed
	}
	return ActionNone
}

func (ws *Widgets) Drag(p Pt) {
	ws.AssetSize.Drag(p)
	ws.Reverb.Drag(p)
}

func (ws *Widgets) Release() {
	ws.AssetSize.Release()
	ws.Reverb.Release()
}
