package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFlyingAssets(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	w.GenerateFlyingAssets()
	require.Len(t, w.FlyingAssets, NFlyingAssets)
	for _, a := range w.FlyingAssets {
		assert.GreaterOrEqual(t, a.Pos.Y, w.Height+20)
		assert.Less(t, a.Pos.Y, w.Height+200)
		assert.Equal(t, 0.0, a.Alpha)
		assert.Less(t, a.Img, len(w.Sizes.Flying))
		assert.LessOrEqual(t, a.StartDelayMs, int64(FlyingMaxStartMs))
	}
}

func TestStepFlyingAssets_WaitsForStartDelay(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	w.GenerateFlyingAssets()
	a := &w.FlyingAssets[0]
	a.StartDelayMs = 1000
	y := a.Pos.Y

	w.StepFlyingAssets(1000)
	assert.Equal(t, y, a.Pos.Y)
	w.StepFlyingAssets(1001)
	assert.Equal(t, y-a.Speed, a.Pos.Y)
	assert.Equal(t, FlyingAlphaStep, a.Alpha)
}

func TestStepFlyingAssets_Recycles(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	w.GenerateFlyingAssets()
	a := &w.FlyingAssets[3]
	a.StartDelayMs = 0
	a.Alpha = 255
	a.Pos.Y = -1000

	w.StepFlyingAssets(1)
	require.Len(t, w.FlyingAssets, NFlyingAssets)
	assert.GreaterOrEqual(t, a.Pos.Y, w.Height+20)
	assert.Less(t, a.Pos.Y, w.Height+200)
	assert.Equal(t, 0.0, a.Alpha)
	assert.GreaterOrEqual(t, a.Speed, 1.0)
	assert.Less(t, a.Speed, 3.0)
}

func TestStepFlyingAssets_AlphaCapped(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	w.GenerateFlyingAssets()
	a := &w.FlyingAssets[0]
	a.StartDelayMs = 0
	a.Alpha = 254
	w.StepFlyingAssets(1)
	assert.Equal(t, 255.0, a.Alpha)
}

func TestTowerTransition_Progress(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	toFloatingText(t, &w, "health")
	for i := range w.Fragments {
		w.Fragments[i].Alpha = 0
	}
	stepN(&w, 1)
	require.Equal(t, TowerTransitionScreen, w.Screen)
	entered := w.EnteredMs

	step(&w, PlayerInput{NowMs: entered + TowerTransitionMs/2, Pointer: far})
	assert.InDelta(t, 0.5, w.TowerProgress, 1e-9)
	assert.Equal(t, TowerTransitionScreen, w.Screen)

	step(&w, PlayerInput{NowMs: entered + TowerTransitionMs - 1, Pointer: far})
	assert.Equal(t, TowerTransitionScreen, w.Screen)

	step(&w, PlayerInput{NowMs: entered + TowerTransitionMs, Pointer: far})
	assert.Equal(t, TowerScreen, w.Screen)
	assert.Equal(t, 1.0, w.TowerProgress)
}

func TestTower_AssetsKeepLooping(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	toTower(t, &w)
	stepN(&w, 2000)
	assert.Equal(t, TowerScreen, w.Screen)
	require.Len(t, w.FlyingAssets, NFlyingAssets)
	for _, a := range w.FlyingAssets {
		assert.Less(t, a.Pos.Y, w.Height+200)
	}
}

func TestTower_ClickStillEmitsCue(t *testing.T) {
	w := newTestWorld(11, 1920, 1080)
	toTower(t, &w)
	press(&w, w.Center())
	assert.Equal(t, TowerScreen, w.Screen)
	assert.True(t, w.HasCue(CueClick))
}
