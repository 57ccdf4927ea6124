package main

import "fmt"

// Screen is one phase of the ritual. Exactly one screen is active at a time
// and the normal flow only ever moves forward through the list below. Reset
// is the only way back to StartScreen.
type Screen int64

const (
	StartScreen Screen = iota
	MainScreen
	WishInputScreen
	FloatingTextScreen
	TowerTransitionScreen
	TowerScreen
	NScreens
)

// String returns the short name used in exported file names.
func (s Screen) String() string {
	switch s {
	case StartScreen:
		return "start"
	case MainScreen:
		return "main"
	case WishInputScreen:
		return "textbox"
	case FloatingTextScreen:
		return "background"
	case TowerTransitionScreen:
		return "transition"
	case TowerScreen:
		return "tower"
	default:
		return fmt.Sprintf("screen%d", int64(s))
	}
}

func (s Screen) Valid() bool {
	return s >= StartScreen && s < NScreens
}

// screenLogic is what every screen knows how to do. The World never switches
// on its current screen, it asks screenLogics for the behavior instead.
type screenLogic interface {
	// Enter runs right after the World switched to this screen.
	Enter(w *World)
	// Exit runs right before the World leaves this screen.
	Exit(w *World)
	// Step advances the screen by one frame. It may call w.Transition, in
	// which case it must return right after.
	Step(w *World, input PlayerInput)
}

var screenLogics = [NScreens]screenLogic{
	StartScreen:           startLogic{},
	MainScreen:            mainLogic{},
	WishInputScreen:       wishInputLogic{},
	FloatingTextScreen:    floatingTextLogic{},
	TowerTransitionScreen: towerTransitionLogic{},
	TowerScreen:           towerLogic{},
}

type startLogic struct{}

func (startLogic) Enter(w *World) {}
func (startLogic) Exit(w *World)  {}

func (startLogic) Step(w *World, input PlayerInput) {
	if input.Pressed {
		w.Transition(MainScreen)
	}
}

type mainLogic struct{}

func (mainLogic) Enter(w *World) {
	w.CarpScale = CarpIntroScale
	w.LayoutCoins()
	w.CoinsStartMs = w.NowMs
	w.Emit(CueHeavenFadeIn)
}

func (mainLogic) Exit(w *World) {}

func (mainLogic) Step(w *World, input PlayerInput) {
	if input.Pressed && w.CarpBounds().StrictlyContainsPt(input.Pointer) {
		w.Transition(WishInputScreen)
		return
	}
	w.CarpScale = Lerp(w.CarpScale, w.CarpTargetScale, CarpLerp)
	w.StepCoins()
}

type wishInputLogic struct{}

func (wishInputLogic) Enter(w *World) {
	w.Clusters = w.Clusters[:0]
	w.Emit(CueWoodenFishLoop)
}

func (wishInputLogic) Exit(w *World) {
	w.Emit(CueWoodenFishStop)
}

func (wishInputLogic) Step(w *World, input PlayerInput) {
	if w.HandleWishKeys(input) {
		return
	}
	w.StepClusters()
}

type floatingTextLogic struct{}

func (floatingTextLogic) Enter(w *World) {
	w.SubmittedWish = w.Wish.String()
	w.GenerateFragments(w.SubmittedWish)
	w.Emit(CueAmbienceLoop)
}

func (floatingTextLogic) Exit(w *World) {}

func (floatingTextLogic) Step(w *World, input PlayerInput) {
	anyVisible := w.StepFragments(input.Pointer)
	timedOut := w.NowMs-w.EnteredMs > FloatingTextTimeoutMs
	if !anyVisible || timedOut {
		w.Transition(TowerTransitionScreen)
	}
}

type towerTransitionLogic struct{}

func (towerTransitionLogic) Enter(w *World) {
	w.GenerateFlyingAssets()
}

func (towerTransitionLogic) Exit(w *World) {}

func (towerTransitionLogic) Step(w *World, input PlayerInput) {
	elapsed := w.NowMs - w.EnteredMs
	w.TowerProgress = min(1, float64(elapsed)/float64(TowerTransitionMs))
	w.StepFlyingAssets(elapsed)
	if w.TowerProgress >= 1 {
		w.Transition(TowerScreen)
	}
}

type towerLogic struct{}

func (towerLogic) Enter(w *World) {
	w.TowerProgress = 1
}

func (towerLogic) Exit(w *World) {}

func (towerLogic) Step(w *World, input PlayerInput) {
	// The flying assets keep looping forever. Their clock keeps running from
	// the start of the transition so every start delay has long passed.
	w.StepFlyingAssets(w.NowMs - w.EnteredMs + TowerTransitionMs)
}
