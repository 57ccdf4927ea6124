package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	playing bool
	volume  float64
	rewinds int
	plays   int
}

func (p *fakePlayer) Play()                    { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()                   { p.playing = false }
func (p *fakePlayer) IsPlaying() bool          { return p.playing }
func (p *fakePlayer) Rewind() error            { p.rewinds++; return nil }
func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }
func (p *fakePlayer) Volume() float64          { return p.volume }

// fakeSound returns a loaded Sound together with every player it created.
func fakeSound(name string) (*Sound, *[]*fakePlayer) {
	players := &[]*fakePlayer{}
	s := NewSound(name, func(loop bool) (Player, error) {
		p := &fakePlayer{}
		*players = append(*players, p)
		return p, nil
	})
	return s, players
}

func newTestAudio() (*AudioManager, [NSounds]*[]*fakePlayer) {
	am := NewAudioManager(NewReverb())
	var players [NSounds]*[]*fakePlayer
	for i := range am.Sounds {
		am.Sounds[i], players[i] = fakeSound("s")
	}
	for i := range am.Typing {
		am.Typing[i], _ = fakeSound("w")
	}
	return am, players
}

func TestSound_NotLoadedDoesNothing(t *testing.T) {
	s := NewSound("missing", nil)
	assert.False(t, s.IsLoaded())
	s.Play()
	s.SetVolume(0.5)
	s.FadeTo(1, 1)
	s.Update(1)
	s.Stop()
	assert.False(t, s.IsPlaying())
}

func TestSound_PlayRewinds(t *testing.T) {
	s, players := fakeSound("click")
	s.Play()
	s.Play()
	require.Len(t, *players, 1)
	p := (*players)[0]
	assert.Equal(t, 2, p.rewinds)
	assert.Equal(t, 2, p.plays)
	assert.True(t, s.IsPlaying())

	s.Stop()
	assert.False(t, s.IsPlaying())
}

func TestSound_FadeTo(t *testing.T) {
	s, players := fakeSound("heaven")
	s.SetVolume(0)
	s.Play()
	s.FadeTo(0.6, 3)

	s.Update(1.5)
	assert.InDelta(t, 0.3, s.Volume(), 1e-6)
	assert.InDelta(t, 0.3, (*players)[0].volume, 1e-6)
	s.Update(2)
	assert.InDelta(t, 0.6, s.Volume(), 1e-6)

	// The fade is over, nothing changes anymore.
	s.SetVolume(0.2)
	s.Update(1)
	assert.Equal(t, 0.2, s.Volume())
}

func TestSound_SetLoopReplacesPlayer(t *testing.T) {
	s, players := fakeSound("wood")
	s.Play()
	s.SetLoop(true)
	assert.False(t, (*players)[0].playing)
	s.Play()
	assert.Len(t, *players, 2)
}

func TestAudioManager_LockedUntilClick(t *testing.T) {
	am, players := newTestAudio()
	am.Apply([]Cue{{Kind: CueHeavenFadeIn}})
	assert.Empty(t, *players[SoundHeaven])

	am.Apply([]Cue{{Kind: CueClick}, {Kind: CueHeavenFadeIn}})
	require.Len(t, *players[SoundButton], 1)
	assert.True(t, (*players[SoundButton])[0].playing)
	require.Len(t, *players[SoundHeaven], 1)
	assert.True(t, am.Sounds[SoundHeaven].IsPlaying())
	assert.Equal(t, 0.0, am.Sounds[SoundHeaven].Volume())

	am.Update(HeavenFadeSec)
	assert.InDelta(t, HeavenVolume, am.Sounds[SoundHeaven].Volume(), 1e-6)
}

func TestAudioManager_Muted(t *testing.T) {
	am, players := newTestAudio()
	am.Muted = true
	am.Apply([]Cue{{Kind: CueClick}, {Kind: CueAmbienceLoop}})
	assert.Empty(t, *players[SoundButton])
	assert.Empty(t, *players[SoundAmbience])
}

func TestAudioManager_WoodenFishAndStopAll(t *testing.T) {
	am, _ := newTestAudio()
	am.Apply([]Cue{{Kind: CueClick}, {Kind: CueWoodenFishLoop}, {Kind: CueAmbienceLoop}})
	assert.True(t, am.Sounds[SoundWoodenFish].IsPlaying())
	assert.Equal(t, WoodenFishVolume, am.Sounds[SoundWoodenFish].Volume())

	am.Apply([]Cue{{Kind: CueWoodenFishStop}})
	assert.False(t, am.Sounds[SoundWoodenFish].IsPlaying())
	assert.True(t, am.Sounds[SoundAmbience].IsPlaying())

	am.Apply([]Cue{{Kind: CueStopAll}})
	for _, s := range am.Sounds {
		assert.False(t, s.IsPlaying())
	}
}

func TestAudioManager_TypingIndex(t *testing.T) {
	am, _ := newTestAudio()
	am.Unlock()
	am.Apply([]Cue{{Kind: CueTyping, Index: 3}, {Kind: CueTyping, Index: 99}})
	assert.True(t, am.Typing[3].IsPlaying())
	assert.Equal(t, TypingVolume, am.Typing[3].Volume())
}

func TestAudioManager_SetReverb(t *testing.T) {
	am, _ := newTestAudio()
	am.SetReverb(0.4)
	assert.Equal(t, 0.4, am.Reverb.Amount())
}

func TestAudioManager_FollowsTheRitual(t *testing.T) {
	am, _ := newTestAudio()
	w := newTestWorld(2, 1920, 1080)
	toWishInput(t, &w)
	am.Apply(w.Cues)
	assert.True(t, am.Sounds[SoundWoodenFish].IsPlaying())

	typeText(&w, "x")
	step(&w, PlayerInput{Pointer: far, EnterPressed: true})
	am.Apply(w.Cues)
	assert.False(t, am.Sounds[SoundWoodenFish].IsPlaying())
	assert.True(t, am.Sounds[SoundAmbience].IsPlaying())
}
