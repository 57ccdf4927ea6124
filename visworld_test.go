package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisWorld_GrainDirtyFollowsCues(t *testing.T) {
	v := NewVisWorld(1)
	assert.True(t, v.GrainDirty)
	v.GrainPixels(10, 10)
	assert.False(t, v.GrainDirty)

	w := newTestWorld(1, 800, 600)
	stepN(&w, 1)
	v.Step(&w)
	assert.False(t, v.GrainDirty)

	step(&w, PlayerInput{Pointer: far, Width: 1024, Height: 768})
	v.Step(&w)
	assert.True(t, v.GrainDirty)
}

func TestVisWorld_GrainDensity(t *testing.T) {
	v := NewVisWorld(1)
	pix := v.GrainPixels(200, 100)
	assert.Len(t, pix, 200*100*4)
	n := 0
	for i := 0; i < len(pix); i += 4 {
		assert.Zero(t, pix[i])
		if pix[i+3] != 0 {
			assert.Equal(t, byte(128), pix[i+3])
			n++
		}
	}
	assert.InDelta(t, GrainDensity*200*100, n, 300)
}

func TestVisWorld_DoesNotTouchWorldRand(t *testing.T) {
	w1 := newTestWorld(1, 800, 600)
	w2 := newTestWorld(1, 800, 600)
	v := NewVisWorld(2)
	for range 50 {
		stepN(&w1, 1)
		stepN(&w2, 1)
		v.Step(&w1)
		v.GrainPixels(4, 4)
	}
	assert.Equal(t, w2.StateBytes(), w1.StateBytes())
	assert.Equal(t, w2.RInt(0, 1000000), w1.RInt(0, 1000000))
}

func TestVisWorld_SmallGlows(t *testing.T) {
	v := NewVisWorld(1)
	w := newTestWorld(1, 800, 600)
	v.Step(&w)
	assert.Equal(t, int64(1), v.FrameIdx)
	for i := range v.SmallGlowColors {
		assert.Less(t, v.SmallGlowColors[i], len(Palette))
		assert.GreaterOrEqual(t, v.SmallGlowSizes[i], 0.8)
		assert.Less(t, v.SmallGlowSizes[i], 1.2)
	}
}
