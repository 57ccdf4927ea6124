package main

import (
	"bytes"
	"embed"
	"fmt"
	"image/color"
	"io"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Fonts used when data/fonts is empty. The first font is the one used for
// instructions, all of them are used for the floating wish.
var fallbackFonts = [][]byte{
	goregular.TTF,
	gobold.TTF,
	goitalic.TTF,
	gomedium.TTF,
	gosmallcaps.TTF,
}

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.LoadConfig()
		g.LoadImages()
		g.LoadFonts()
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.LoadAudio()
	g.widgets = NewWidgets()
}

func (g *Gui) LoadConfig() {
	g.Config = Config{}
	if g.devModeEnabled {
		LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
	} else {
		LoadYAML(g.FSys, "data/config.yaml", &g.Config)
	}
	if g.Sketch == "" {
		g.Sketch = SketchRitual
	}
	if g.ExportDir == "" {
		g.ExportDir = "exports"
	}
}

func (g *Gui) LoadImages() {
	g.imgCarp = LoadImageOr(g.FSys, "data/images/carp.png", fallbackCarp)
	g.imgOverlay = LoadImageOr(g.FSys, "data/images/overlay.png", fallbackOverlay)
	g.imgCharm = LoadImageOr(g.FSys, "data/images/charm1.png", fallbackCharm)
	g.imgCoin = LoadImageOr(g.FSys, "data/images/charm2.png", fallbackCoin)
	g.imgTextBox = LoadImageOr(g.FSys, "data/images/textbox.png", fallbackTextBox)
	g.imgTower = LoadImageOr(g.FSys, "data/images/tower.png", fallbackTower)
	g.imgOldCoin = LoadImageOr(g.FSys, "data/images/old-coin.png", fallbackCoin)
	g.imgDisc = NewDisc(64)

	// The flying set mixes coins, joss papers and charms.
	g.imgFlying = g.imgFlying[:0]
	g.imgFlying = append(g.imgFlying,
		LoadImageOr(g.FSys, "data/images/coin.png", fallbackCoin))
	for i := 1; i <= 4; i++ {
		name := fmt.Sprintf("data/images/josspaper%d.png", i)
		c := Palette[i%len(Palette)]
		g.imgFlying = append(g.imgFlying, LoadImageOr(g.FSys, name,
			func() *ebiten.Image { return fallbackJossPaper(c) }))
	}
	g.imgFlying = append(g.imgFlying, g.imgCharm, g.imgCoin)
}

func (g *Gui) LoadFonts() {
	g.fonts = g.fonts[:0]
	entries, err := g.FSys.ReadDir("data/fonts")
	if err == nil {
		for _, e := range entries {
			ext := strings.ToLower(path.Ext(e.Name()))
			if e.IsDir() || (ext != ".ttf" && ext != ".otf") {
				continue
			}
			data, err := g.FSys.ReadFile(path.Join("data/fonts", e.Name()))
			Check(err)
			g.addFont(data)
		}
	}
	if len(g.fonts) == 0 {
		for _, data := range fallbackFonts {
			g.addFont(data)
		}
	}
	log.Printf("[Load] %d fonts", len(g.fonts))
}

func (g *Gui) addFont(data []byte) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	Check(err)
	if err == nil {
		g.fonts = append(g.fonts, src)
	}
}

func (g *Gui) LoadAudio() {
	if g.audioContext == nil {
		g.audioContext = audio.NewContext(SampleRate)
	}
	g.audio = NewAudioManager(NewReverb())
	g.audio.Muted = g.MuteAudio
	g.audio.Sounds[SoundButton] = g.LoadSound("data/sounds/button.ogg", false)
	g.audio.Sounds[SoundHeaven] = g.LoadSound("data/sounds/heaven.ogg", false)
	g.audio.Sounds[SoundWoodenFish] = g.LoadSound("data/sounds/woodenfish.ogg", false)
	g.audio.Sounds[SoundAmbience] = g.LoadSound("data/sounds/ambience.ogg", true)
	for i := range g.audio.Typing {
		name := fmt.Sprintf("data/sounds/w%d.ogg", i+1)
		g.audio.Typing[i] = g.LoadSound(name, false)
	}
}

// LoadSound returns a Sound that decodes name every time it needs a new
// player. A missing file gives a Sound that is not loaded.
func (g *Gui) LoadSound(name string, withReverb bool) *Sound {
	if !FileExists(g.FSys, name) {
		log.Printf("[Load] sound %s missing, it will be silent", name)
		return NewSound(name, nil)
	}
	data, err := g.FSys.ReadFile(name)
	Check(err)
	return NewSound(name, func(loop bool) (Player, error) {
		stream, err := vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		var src io.ReadSeeker = stream
		if loop {
			src = audio.NewInfiniteLoop(stream, stream.Length())
		}
		if withReverb {
			src = g.audio.Reverb.Wrap(src)
		}
		p, err := g.audioContext.NewPlayer(src)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

// Sizes reports the image sizes the World lays things out with.
func (g *Gui) Sizes() (s Sizes) {
	s.Carp = ImageSize(g.imgCarp)
	s.Tower = ImageSize(g.imgTower)
	s.Coin = ImageSize(g.imgCoin)
	for _, img := range g.imgFlying {
		s.Flying = append(s.Flying, ImageSize(img))
	}
	return
}

func ImageSize(img *ebiten.Image) Pt {
	if img == nil {
		return Pt{}
	}
	b := img.Bounds()
	return Pt{float64(b.Dx()), float64(b.Dy())}
}

func (g *Gui) Face(font int, size float64) *text.GoTextFace {
	if font < 0 || font >= len(g.fonts) {
		font = 0
	}
	return &text.GoTextFace{Source: g.fonts[font], Size: size}
}

// MeasureText is the World's TextMeasurer.
func (g *Gui) MeasureText(font int, size float64, s string) float64 {
	if len(g.fonts) == 0 {
		return 0
	}
	w, _ := text.Measure(s, g.Face(font, size), 0)
	return w
}

// The fallbacks below stand in for artwork missing from data/images. Images
// that get tinted are drawn white.

func fallbackCarp() *ebiten.Image {
	img := ebiten.NewImage(600, 600)
	vector.DrawFilledCircle(img, 300, 300, 290, Gold, true)
	vector.DrawFilledCircle(img, 300, 300, 230, Palette[0], true)
	vector.StrokeCircle(img, 300, 300, 160, 10, Gold, true)
	for i := range 8 {
		p := Pt{300, 300}.Polar(float64(i)*0.785, 100)
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), 28, Teal, true)
	}
	return img
}

func fallbackOverlay() *ebiten.Image {
	img := ebiten.NewImage(256, 256)
	img.Fill(WithAlpha(Palette[3], 90))
	for i := range 16 {
		y := float32(i * 16)
		vector.StrokeLine(img, 0, y, 256, y+64, 2, WithAlpha(Gold, 60), true)
	}
	return img
}

func fallbackCharm() *ebiten.Image {
	img := ebiten.NewImage(200, 200)
	for i := range 6 {
		p := Pt{100, 100}.Polar(float64(i)*1.047, 50)
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), 40, White, true)
	}
	vector.DrawFilledCircle(img, 100, 100, 35, White, true)
	return img
}

func fallbackCoin() *ebiten.Image {
	img := ebiten.NewImage(160, 160)
	vector.DrawFilledCircle(img, 80, 80, 78, Gold, true)
	vector.StrokeCircle(img, 80, 80, 62, 4, Palette[0], true)
	vector.DrawFilledRect(img, 60, 60, 40, 40, Black, false)
	return img
}

func fallbackTextBox() *ebiten.Image {
	img := ebiten.NewImage(1200, 500)
	img.Fill(WithAlpha(Palette[0], 230))
	vector.StrokeRect(img, 12, 12, 1176, 476, 8, Gold, false)
	return img
}

func fallbackTower() *ebiten.Image {
	img := ebiten.NewImage(500, 900)
	for i := range 7 {
		w := float32(460 - i*55)
		h := float32(110)
		x := (500 - w) / 2
		y := float32(900) - float32(i+1)*120
		vector.DrawFilledRect(img, x, y, w, h, Gold, false)
		vector.StrokeRect(img, x, y, w, h, 4, Palette[0], false)
	}
	vector.DrawFilledCircle(img, 250, 50, 40, Gold, true)
	return img
}

func fallbackJossPaper(c color.NRGBA) *ebiten.Image {
	img := ebiten.NewImage(120, 180)
	img.Fill(c)
	vector.StrokeRect(img, 6, 6, 108, 168, 4, Gold, false)
	vector.DrawFilledCircle(img, 60, 90, 24, Gold, true)
	return img
}

// NewDisc returns a white disc of the given diameter, used to draw glows
// with any color and blend mode.
func NewDisc(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, White, true)
	return img
}
