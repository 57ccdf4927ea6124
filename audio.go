package main

import (
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const SampleRate = 44100

const (
	ClickVolume      = 1.0
	TypingVolume     = 0.3
	HeavenVolume     = 0.7
	HeavenFadeSec    = 3.0
	WoodenFishVolume = 0.5
	AmbienceVolume   = 0.6
)

// Player is what a Sound needs from an audio player. *audio.Player
// implements it.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
	Volume() float64
}

// PlayerFactory creates a fresh player for a sound, looping forever if loop
// is set.
type PlayerFactory func(loop bool) (Player, error)

// Sound is one loaded sound. A Sound whose file was missing is still usable:
// it is simply not loaded and every operation on it does nothing.
type Sound struct {
	Name      string
	newPlayer PlayerFactory
	player    Player
	loop      bool
	volume    float64
	fade      *gween.Tween
}

func NewSound(name string, newPlayer PlayerFactory) *Sound {
	return &Sound{Name: name, newPlayer: newPlayer, volume: 1}
}

func (s *Sound) IsLoaded() bool {
	return s != nil && s.newPlayer != nil
}

func (s *Sound) ensurePlayer() Player {
	if !s.IsLoaded() {
		return nil
	}
	if s.player == nil {
		p, err := s.newPlayer(s.loop)
		if err != nil {
			log.Printf("[Audio] cannot create player for %s: %v", s.Name, err)
			return nil
		}
		s.player = p
		s.player.SetVolume(s.volume)
	}
	return s.player
}

// SetLoop changes whether the sound loops. The current player, if any, is
// stopped and replaced on the next Play.
func (s *Sound) SetLoop(loop bool) {
	if !s.IsLoaded() || s.loop == loop {
		return
	}
	if s.player != nil {
		s.player.Pause()
		s.player = nil
	}
	s.loop = loop
}

// Play starts the sound from the beginning.
func (s *Sound) Play() {
	p := s.ensurePlayer()
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("[Audio] cannot rewind %s: %v", s.Name, err)
	}
	p.Play()
}

func (s *Sound) Stop() {
	s.fade = nil
	if s.player == nil {
		return
	}
	s.player.Pause()
	if err := s.player.Rewind(); err != nil {
		log.Printf("[Audio] cannot rewind %s: %v", s.Name, err)
	}
}

func (s *Sound) IsPlaying() bool {
	return s.player != nil && s.player.IsPlaying()
}

func (s *Sound) SetVolume(volume float64) {
	if !s.IsLoaded() {
		return
	}
	s.fade = nil
	s.volume = Clamp(volume, 0, 1)
	if s.player != nil {
		s.player.SetVolume(s.volume)
	}
}

func (s *Sound) Volume() float64 {
	return s.volume
}

// FadeTo ramps the volume linearly from its current value to target over
// seconds. The ramp advances in Update.
func (s *Sound) FadeTo(target float64, seconds float64) {
	if !s.IsLoaded() {
		return
	}
	s.fade = gween.New(float32(s.volume), float32(Clamp(target, 0, 1)),
		float32(seconds), ease.Linear)
}

func (s *Sound) Update(dt float64) {
	if s.fade == nil {
		return
	}
	v, finished := s.fade.Update(float32(dt))
	s.volume = float64(v)
	if s.player != nil {
		s.player.SetVolume(s.volume)
	}
	if finished {
		s.fade = nil
	}
}

type SoundId int64

const (
	SoundButton SoundId = iota
	SoundHeaven
	SoundWoodenFish
	SoundAmbience
	NSounds
)

// AudioManager turns the Cues of the World into sounds.
type AudioManager struct {
	Sounds [NSounds]*Sound
	Typing [NTypingSounds]*Sound
	Reverb *Reverb
	Muted  bool
	// Browsers refuse to start audio before a user gesture, so nothing plays
	// until the first click.
	unlocked bool
}

func NewAudioManager(reverb *Reverb) *AudioManager {
	am := &AudioManager{Reverb: reverb}
	for i := range am.Sounds {
		am.Sounds[i] = NewSound("", nil)
	}
	for i := range am.Typing {
		am.Typing[i] = NewSound("", nil)
	}
	return am
}

func (am *AudioManager) Unlock() {
	if !am.unlocked {
		log.Printf("[AudioManager] unlocked")
	}
	am.unlocked = true
}

func (am *AudioManager) Apply(cues []Cue) {
	for _, c := range cues {
		if c.Kind == CueClick {
			am.Unlock()
		}
		if c.Kind == CueStopAll {
			am.StopAll()
			continue
		}
		if am.Muted || !am.unlocked {
			continue
		}
		am.apply(c)
	}
}

func (am *AudioManager) apply(c Cue) {
	switch c.Kind {
	case CueClick:
		s := am.Sounds[SoundButton]
		s.SetVolume(ClickVolume)
		s.Play()
	case CueTyping:
		if c.Index < 0 || c.Index >= len(am.Typing) {
			return
		}
		s := am.Typing[c.Index]
		s.SetVolume(TypingVolume)
		s.Play()
	case CueHeavenFadeIn:
		s := am.Sounds[SoundHeaven]
		s.SetVolume(0)
		s.Play()
		s.FadeTo(HeavenVolume, HeavenFadeSec)
	case CueWoodenFishLoop:
		s := am.Sounds[SoundWoodenFish]
		s.SetLoop(true)
		s.SetVolume(WoodenFishVolume)
		s.Play()
	case CueWoodenFishStop:
		am.Sounds[SoundWoodenFish].Stop()
	case CueAmbienceLoop:
		s := am.Sounds[SoundAmbience]
		s.SetLoop(true)
		s.SetVolume(AmbienceVolume)
		s.Play()
	}
}

func (am *AudioManager) Update(dt float64) {
	for _, s := range am.Sounds {
		s.Update(dt)
	}
}

func (am *AudioManager) StopAll() {
	for _, s := range am.Sounds {
		s.Stop()
	}
	for _, s := range am.Typing {
		s.Stop()
	}
}

// SetReverb sets the reverb amount applied to the ambience, in [0, 1].
func (am *AudioManager) SetReverb(amount float64) {
	if am.Reverb != nil {
		am.Reverb.SetAmount(amount)
	}
}
