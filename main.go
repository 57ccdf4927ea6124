package main

import (
	"embed"
	"fmt"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ReleaseVersion is the version of an executable built and given to someone,
// either as a desktop executable or a .wasm for the browser. It is a unique
// label for the experience a visitor gets.
// ReleaseVersion must change when InputVersion changes. It must also change
// when the ritual looks or sounds different even if the inputs did not change,
// so recordings can be matched with the build that produced them.
const ReleaseVersion = 1

const (
	RitualTPS = 30
	SketchTPS = 24
)

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	Live GuiState = iota
	Playback
	DebugCrash
)

// Sketch selects what the program renders.
type Sketch string

const (
	SketchRitual Sketch = "ritual"
	SketchStrips Sketch = "strips"
	SketchCoins  Sketch = "coins"
)

type Config struct {
	Sketch        Sketch `yaml:"Sketch"`
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	ExportDir     string `yaml:"ExportDir"`
	// Seed drives the World's randomness. 0 means a new seed every run.
	Seed      int64 `yaml:"Seed"`
	MuteAudio bool  `yaml:"MuteAudio"`
}

type Gui struct {
	Config
	world          World
	visWorld       VisWorld
	widgets        Widgets
	audio          *AudioManager
	audioContext   *audio.Context
	FSys           FS
	folderWatcher  FolderWatcher
	devModeEnabled bool
	state          GuiState
	playthrough    Playthrough
	frameIdx       int64
	playbackPaused bool
	startTime      time.Time
	sessionId      uuid.UUID
	pendingExports []ExportKind

	// The canvas is only cleared by the screens that want it cleared, which
	// is how trails are drawn. Exports read it.
	canvas       *ebiten.Image
	grain        *ebiten.Image
	width        int
	height       int
	pointer      Pt
	keys         []ebiten.Key
	touchIds     []ebiten.TouchID
	cursorHidden bool

	imgCarp     *ebiten.Image
	imgOverlay  *ebiten.Image
	imgCharm    *ebiten.Image
	imgCoin     *ebiten.Image
	imgTextBox  *ebiten.Image
	imgTower    *ebiten.Image
	imgOldCoin  *ebiten.Image
	imgDisc     *ebiten.Image
	imgFlying   []*ebiten.Image
	fonts       []*text.GoTextFaceSource
	stripPixels []byte
	strips      StripField
	coinGrid    CoinGrid
	cursor      FlowerCursor
}

func main() {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Wish Ritual")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var g Gui
	g.startTime = time.Now()
	g.sessionId = uuid.New()
	g.playthrough.InputVersion = InputVersion
	g.playthrough.ReleaseVersion = ReleaseVersion
	g.playthrough.Id = g.sessionId

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Only remember the current timestamps, nothing changed yet.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "DebugCrash":
		// Replay everything except the input that crashed, then wait for a
		// key press to step through it. Check must not crash meanwhile.
		g.state = DebugCrash
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "Play", "":
		g.state = Live
		g.playthrough.Seed = g.Seed
		if g.playthrough.Seed == 0 {
			g.playthrough.Seed = time.Now().UnixNano()
		}
		if g.RecordToFile && g.RecordingFile != "" {
			MakeDir(filepath.Dir(g.RecordingFile))
		}
		w, h := ebiten.WindowSize()
		g.playthrough.Width = float64(w)
		g.playthrough.Height = float64(h)
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = g.NewWorld()
	g.visWorld = NewVisWorld(g.playthrough.Seed + 1)
	g.widgets.SetScreen(g.world.Screen)

	if g.state == DebugCrash {
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	switch g.Sketch {
	case SketchStrips, SketchCoins:
		ebiten.SetTPS(SketchTPS)
	default:
		ebiten.SetTPS(RitualTPS)
	}

	log.Printf("[Gui] starting %s sketch, state %d, session %s",
		g.Sketch, g.state, g.sessionId)
	err := ebiten.RunGame(&g)
	Check(err)
}

// NewWorld creates the World for the current playthrough, wired to the sizes
// of the loaded images and to the loaded fonts.
func (g *Gui) NewWorld() World {
	return NewWorldFromPlaythrough(&g.playthrough, g.Sizes(), g.MeasureText,
		len(g.fonts))
}
