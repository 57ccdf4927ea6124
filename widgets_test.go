package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlider_SetValueSnapsAndClamps(t *testing.T) {
	s := NewSlider(0.1, 2, 0.01, 1)
	assert.InDelta(t, 1, s.Value, 1e-9)

	s.SetValue(5)
	assert.InDelta(t, 2, s.Value, 1e-9)
	assert.LessOrEqual(t, s.Value, 2.0)
	s.SetValue(-5)
	assert.Equal(t, 0.1, s.Value)
	s.SetValue(0.1234)
	assert.InDelta(t, 0.12, s.Value, 1e-9)
}

func TestSlider_PressAndDrag(t *testing.T) {
	s := NewSlider(0, 1, 0.01, 0)
	s.Track = NewRectangle(100, 100, 200, SliderTrackH)

	assert.False(t, s.Press(Pt{50, 108}))
	assert.False(t, s.Dragging())

	// The grab area is taller than the track.
	require.True(t, s.Press(Pt{200, 100 - SliderTrackH/2}))
	assert.True(t, s.Dragging())
	assert.InDelta(t, 0.5, s.Value, 1e-9)
	assert.InDelta(t, 200, s.KnobPos().X, 1e-9)

	s.Drag(Pt{250, 500})
	assert.InDelta(t, 0.75, s.Value, 1e-9)
	s.Drag(Pt{1000, 0})
	assert.Equal(t, 1.0, s.Value)

	s.Release()
	s.Drag(Pt{100, 108})
	assert.Equal(t, 1.0, s.Value)
}

func TestWidgets_Layout(t *testing.T) {
	ws := NewWidgets()
	ws.Layout(1920, 1080)

	svg := ws.Buttons[ButtonExportSVG].Bounds
	png := ws.Buttons[ButtonSavePNG].Bounds
	assert.Equal(t, 1920-ButtonMargin, svg.Max.X)
	assert.Equal(t, ButtonMargin, svg.Min.Y)
	assert.Less(t, png.Max.X, svg.Min.X)
	assert.Equal(t, svg.Min.Y, png.Min.Y)

	reset := ws.Buttons[ButtonReset].Bounds
	assert.Equal(t, ButtonMargin, reset.Min.X)
	assert.Equal(t, 1080-ButtonMargin, reset.Max.Y)

	assert.Equal(t, 1920-SliderBoxMargin, ws.SliderBox.Max.X)
	assert.Equal(t, 1080-SliderBoxMargin, ws.SliderBox.Max.Y)
	assert.True(t, ws.SliderBox.ContainsPt(ws.AssetSize.Track.Center()))
	assert.True(t, ws.SliderBox.ContainsPt(ws.Reverb.Track.Center()))
}

func TestWidgets_SetScreen(t *testing.T) {
	ws := NewWidgets()
	for s := StartScreen; s < NScreens; s++ {
		ws.SetScreen(s)
		assert.True(t, ws.Buttons[ButtonSavePNG].Visible)
		assert.True(t, ws.Buttons[ButtonExportSVG].Visible)
		resetVisible := s == FloatingTextScreen || s == TowerTransitionScreen ||
			s == TowerScreen
		assert.Equal(t, resetVisible, ws.Buttons[ButtonReset].Visible, s.String())
		assert.Equal(t, s == TowerScreen, ws.SlidersVisible, s.String())
	}
}

func TestWidgets_Press(t *testing.T) {
	ws := NewWidgets()
	ws.Layout(1920, 1080)

	ws.SetScreen(MainScreen)
	assert.Equal(t, ActionSavePNG, ws.Press(ws.Buttons[ButtonSavePNG].Bounds.Center()))
	assert.Equal(t, ActionExportSVG, ws.Press(ws.Buttons[ButtonExportSVG].Bounds.Center()))
	assert.Equal(t, ActionNone, ws.Press(ws.Buttons[ButtonReset].Bounds.Center()))
	assert.Equal(t, ActionNone, ws.Press(ws.SliderBox.Center()))
	assert.Equal(t, ActionNone, ws.Press(Pt{960, 540}))

	ws.SetScreen(TowerScreen)
	assert.Equal(t, ActionReset, ws.Press(ws.Buttons[ButtonReset].Bounds.Center()))
	assert.Equal(t, ActionConsumed, ws.Press(ws.SliderBox.Min.Plus(Pt{2, 2})))

	assert.Equal(t, ActionConsumed, ws.Press(ws.Reverb.Track.Max))
	assert.True(t, ws.Reverb.Dragging())
	assert.Equal(t, 1.0, ws.Reverb.Value)
	ws.Release()
	assert.False(t, ws.Reverb.Dragging())
}

func TestWidgets_LeavingTowerStopsDrag(t *testing.T) {
	ws := NewWidgets()
	ws.Layout(1920, 1080)
	ws.SetScreen(TowerScreen)
	require.Equal(t, ActionConsumed, ws.Press(ws.AssetSize.Track.Center()))
	require.True(t, ws.AssetSize.Dragging())
	ws.SetScreen(StartScreen)
	assert.False(t, ws.AssetSize.Dragging())
}
