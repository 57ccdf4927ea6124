package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordRitual plays a short ritual on a fresh World and returns it as a
// Playthrough.
func recordRitual(seed int64) Playthrough {
	p := Playthrough{
		InputVersion:   InputVersion,
		ReleaseVersion: 1,
		Id:             uuid.New(),
		Seed:           seed,
		Width:          1280,
		Height:         720,
	}
	w := NewWorldFromPlaythrough(&p, testSizes(), testMeasure, 5)
	now := int64(0)
	record := func(input PlayerInput) {
		now += testFrameMs
		input.NowMs = now
		input.Width = p.Width
		input.Height = p.Height
		p.History = append(p.History, input)
		w.Step(input)
	}

	record(PlayerInput{Pointer: far, Pressed: true})
	for range 20 {
		record(PlayerInput{Pointer: far})
	}
	record(PlayerInput{Pointer: w.Center(), Pressed: true})
	for _, r := range "good luck" {
		record(PlayerInput{Pointer: far, Typed: string(r)})
	}
	for range 30 {
		record(PlayerInput{Pointer: far})
	}
	record(PlayerInput{Pointer: far, EnterPressed: true})
	for i := range 100 {
		record(PlayerInput{Pointer: Pt{float64(i * 12), 360}})
	}
	return p
}

func TestRegressionId_Deterministic(t *testing.T) {
	p := recordRitual(5)
	id1 := RegressionId(&p, testSizes(), testMeasure, 5)
	id2 := RegressionId(&p, testSizes(), testMeasure, 5)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 64)
}

func TestRegressionId_DependsOnSeed(t *testing.T) {
	p1 := recordRitual(5)
	p2 := recordRitual(6)
	assert.NotEqual(t,
		RegressionId(&p1, testSizes(), testMeasure, 5),
		RegressionId(&p2, testSizes(), testMeasure, 5))
}

func TestRegressionId_DependsOnInput(t *testing.T) {
	p1 := recordRitual(5)
	p2 := p1.Clone()
	p2.History[len(p2.History)-1].Pointer = Pt{640, 360}
	p2.History[len(p2.History)-1].Reset = true
	assert.NotEqual(t,
		RegressionId(&p1, testSizes(), testMeasure, 5),
		RegressionId(p2, testSizes(), testMeasure, 5))
}

func TestPlaythrough_SerializeReplaysTheSame(t *testing.T) {
	p := recordRitual(9)
	data := p.Serialize()
	p2 := DeserializePlaythrough(data)

	assert.Equal(t, p.Id, p2.Id)
	assert.Equal(t, p.Seed, p2.Seed)
	require.Len(t, p2.History, len(p.History))
	assert.Equal(t, p.History, p2.History)
	assert.Equal(t,
		RegressionId(&p, testSizes(), testMeasure, 5),
		RegressionId(&p2, testSizes(), testMeasure, 5))
}

func TestPlaythrough_CloneIsIndependent(t *testing.T) {
	p := recordRitual(9)
	c := p.Clone()
	c.History[0].Pressed = false
	c.History = append(c.History, PlayerInput{})
	assert.True(t, p.History[0].Pressed)
	assert.Len(t, c.History, len(p.History)+1)
}

func TestPlaythrough_WrongInputVersionPanics(t *testing.T) {
	p := recordRitual(9)
	p.InputVersion = InputVersion + 1
	data := p.Serialize()
	assert.Panics(t, func() { DeserializePlaythrough(data) })
}

func TestPlaythrough_ReachesFloatingText(t *testing.T) {
	p := recordRitual(9)
	w := NewWorldFromPlaythrough(&p, testSizes(), testMeasure, 5)
	for _, input := range p.History {
		w.Step(input)
	}
	assert.Equal(t, FloatingTextScreen, w.Screen)
	assert.Equal(t, "good luck", w.SubmittedWish)
}
