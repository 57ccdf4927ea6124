package main

import (
	"log"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])

	if g.devModeEnabled && g.folderWatcher.FolderContentsChanged() {
		g.LoadConfig()
		g.audio.Muted = g.MuteAudio
		log.Printf("[Gui] config reloaded")
	}

	x, y := ebiten.CursorPosition()
	g.cursor.Step(Pt{float64(x), float64(y)}, float64(g.width))
	g.updateCursorMode()

	switch g.Sketch {
	case SketchStrips:
		g.strips.Step()
		return nil
	case SketchCoins:
		g.coinGrid.Step()
		return nil
	}

	switch g.state {
	case Live:
		g.UpdateLive()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	g.audio.SetReverb(g.widgets.Reverb.Value)
	g.audio.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Gui) updateCursorMode() {
	if g.cursor.Enabled == g.cursorHidden {
		return
	}
	if g.cursor.Enabled {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	g.cursorHidden = g.cursor.Enabled
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.keys, key)
}

func (g *Gui) JustReleased(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// GatherInput turns this frame's mouse, touch and keyboard state into a
// PlayerInput. Presses that land on a widget are handled here and never
// reach the World, except for the reset button.
func (g *Gui) GatherInput() (input PlayerInput) {
	input.NowMs = time.Since(g.startTime).Milliseconds()
	input.Width = float64(g.width)
	input.Height = float64(g.height)

	x, y := ebiten.CursorPosition()
	g.pointer = Pt{float64(x), float64(y)}
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	g.touchIds = inpututil.AppendJustPressedTouchIDs(g.touchIds[:0])
	if len(g.touchIds) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchIds[0])
		g.pointer = Pt{float64(tx), float64(ty)}
		pressed = true
	}
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		g.pointer = Pt{float64(tx), float64(ty)}
		held = true
	}
	input.Pointer = g.pointer

	if pressed {
		switch g.widgets.Press(g.pointer) {
		case ActionNone:
			input.Pressed = true
		case ActionSavePNG:
			g.pendingExports = append(g.pendingExports, ExportPNG)
		case ActionExportSVG:
			g.pendingExports = append(g.pendingExports, ExportSVG)
		case ActionReset:
			input.Reset = true
		}
	}
	if held {
		g.widgets.Drag(g.pointer)
	} else {
		g.widgets.Release()
	}

	input.Typed = string(ebiten.AppendInputChars(nil))
	input.DeletePressed = g.JustPressed(ebiten.KeyBackspace) ||
		g.JustPressed(ebiten.KeyDelete)
	input.DeleteReleased = g.JustReleased(ebiten.KeyBackspace, ebiten.KeyDelete)
	input.EnterPressed = g.JustPressed(ebiten.KeyEnter) ||
		g.JustPressed(ebiten.KeyNumpadEnter)
	return
}

func (g *Gui) UpdateLive() {
	input := g.GatherInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile && g.RecordingFile != "" {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.StepWorld(input, true)
	g.frameIdx++
}

// StepWorld steps the World and everything that follows it. Sounds are only
// played when audible is set, so rewinding a playback stays silent.
func (g *Gui) StepWorld(input PlayerInput, audible bool) {
	g.world.Step(input)
	g.visWorld.Step(&g.world)
	if audible {
		g.audio.Apply(g.world.Cues)
	}
	for _, c := range g.world.Cues {
		if c.Kind == CueScreenChanged {
			log.Printf("[World] %s -> %s", Screen(c.Index), g.world.Screen)
		}
	}
	g.widgets.SetScreen(g.world.Screen)
}

// rewind replays the playthrough from the start up to frame target.
func (g *Gui) rewind(target int64) {
	g.audio.StopAll()
	g.world = g.NewWorld()
	g.visWorld = NewVisWorld(g.playthrough.Seed + 1)
	for i := range target {
		g.StepWorld(g.playthrough.History[i], false)
	}
	g.frameIdx = target
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	targetFrameIdx := g.frameIdx
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if g.JustPressed(ebiten.KeyLeft) {
		targetFrameIdx--
	}
	if shift && ebiten.IsKeyPressed(ebiten.KeyLeft) {
		targetFrameIdx -= 10
	}
	if g.JustPressed(ebiten.KeyHome) {
		targetFrameIdx = 0
	}
	targetFrameIdx = max(0, min(targetFrameIdx, nFrames-1))
	if targetFrameIdx < g.frameIdx {
		g.rewind(targetFrameIdx)
	}

	stepOnce := g.playbackPaused && g.JustPressed(ebiten.KeyRight)
	if (!g.playbackPaused || stepOnce) && g.frameIdx < nFrames {
		input := g.playthrough.History[g.frameIdx]
		g.pointer = input.Pointer
		g.StepWorld(input, true)
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		input := g.playthrough.History[g.frameIdx]
		g.pointer = input.Pointer
		g.StepWorld(input, false)
		g.frameIdx++
	}

	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.rewind(g.frameIdx - 1)
	}
}
