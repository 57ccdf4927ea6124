package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForWidth(t *testing.T) {
	assert.Equal(t, TierMobile, TierForWidth(375))
	assert.Equal(t, TierMobile, TierForWidth(599))
	assert.Equal(t, TierTablet, TierForWidth(600))
	assert.Equal(t, TierTablet, TierForWidth(1023))
	assert.Equal(t, TierDesktop, TierForWidth(1024))
	assert.Equal(t, "desktop", TierDesktop.String())
}

func TestStripField_Resize(t *testing.T) {
	f := NewStripField(3, 1920, 200)
	assert.Equal(t, TierDesktop, f.Tier)
	require.Len(t, f.Strips, int(1920/StripTiers[TierDesktop].Base))

	x := 0.0
	for _, s := range f.Strips {
		assert.Equal(t, x, s.X)
		assert.GreaterOrEqual(t, s.W, f.Params.Min)
		assert.Less(t, s.W, f.Params.Max)
		assert.GreaterOrEqual(t, s.Speed, f.Params.SpeedMin)
		assert.Less(t, s.Speed, f.Params.SpeedMax)
		x += s.W
	}

	f.Resize(400, 200)
	assert.Equal(t, TierMobile, f.Tier)
	assert.Len(t, f.Strips, int(400/StripTiers[TierMobile].Base))
}

func TestStripField_Step(t *testing.T) {
	f := NewStripField(3, 800, 100)
	before := f.Strips[0].Phase
	f.Step()
	assert.InDelta(t, before+f.Strips[0].Speed*StripSpeedFactor, f.Strips[0].Phase, 1e-12)
}

func TestStripField_NoiseInRange(t *testing.T) {
	f := NewStripField(3, 800, 100)
	for i := range 200 {
		n := f.Noise(float64(i)*0.37, float64(i)*0.11, 5)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.LessOrEqual(t, n, 1.0)
	}
}

func TestStripField_SameSeedSameStrips(t *testing.T) {
	f1 := NewStripField(3, 800, 100)
	f2 := NewStripField(3, 800, 100)
	assert.Equal(t, f1.Strips, f2.Strips)
	assert.Equal(t, f1.CellColor(&f1.Strips[2], 40), f2.CellColor(&f2.Strips[2], 40))
}

func TestStripField_Render(t *testing.T) {
	f := NewStripField(3, 300, 50)
	pix := make([]byte, 300*50*4)
	f.Render(pix)
	for i := 3; i < len(pix); i += 4 {
		require.Equal(t, byte(255), pix[i])
	}

	// The first cell of the first strip has the color of that cell.
	c := f.CellColor(&f.Strips[0], 0)
	assert.Equal(t, []byte{c.R, c.G, c.B, 255}, pix[0:4])
}
