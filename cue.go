package main

type CueKind int64

const (
	// CueClick is a pointer press anywhere on the canvas.
	CueClick CueKind = iota
	// CueTyping is a typed character. Cue.Index selects the typing sound.
	CueTyping
	CueHeavenFadeIn
	CueWoodenFishLoop
	CueWoodenFishStop
	CueAmbienceLoop
	CueStopAll
	// CueRegenerateGrain asks for a new grain texture for the canvas.
	CueRegenerateGrain
	// CueScreenChanged is emitted after every screen change. Cue.Index is the
	// screen that was left.
	CueScreenChanged
)

// Cue is something that happened in the World during a Step and that the
// outside might want to react to.
type Cue struct {
	Kind  CueKind
	Index int
}

func (w *World) HasCue(kind CueKind) bool {
	for _, c := range w.Cues {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
