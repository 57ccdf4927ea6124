package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"mime"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

type ExportKind int64

const (
	ExportPNG ExportKind = iota
	ExportSVG
)

func (k ExportKind) Ext() string {
	if k == ExportSVG {
		return "svg"
	}
	return "png"
}

// ExportName is the file name of an export of screen s.
func ExportName(s Screen, kind ExportKind) string {
	return fmt.Sprintf("screenshot_%s.%s", s, kind.Ext())
}

func exportMimeType(name string) string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return "application/octet-stream"
	}
	return t
}

// CanvasToRGBA copies the pixels of img. It must be called from inside the
// game loop, like every ebiten pixel read.
func CanvasToRGBA(img *ebiten.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	img.ReadPixels(rgba.Pix)
	return rgba
}

func EncodePNG(img image.Image) []byte {
	buf := new(bytes.Buffer)
	Check(png.Encode(buf, img))
	return buf.Bytes()
}

// WrapPNGInSVG returns a minimal SVG document showing the PNG over the whole
// width x height view box. Nothing is vectorized; the SVG only references the
// raster frame.
func WrapPNGInSVG(pngData []byte, width, height int) []byte {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
	svg := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <image href="%s" x="0" y="0" width="%d" height="%d" />
</svg>`, width, height, width, height, dataURL, width, height)
	return []byte(svg)
}

// Export saves the current canvas as a PNG or as an SVG wrapping that PNG.
func (g *Gui) Export(kind ExportKind) {
	rgba := CanvasToRGBA(g.canvas)
	data := EncodePNG(rgba)
	if kind == ExportSVG {
		data = WrapPNGInSVG(data, rgba.Bounds().Dx(), rgba.Bounds().Dy())
	}
	name := g.sessionId.String()[:8] + "-" + ExportName(g.world.Screen, kind)
	path := saveExport(g.ExportDir, name, data)
	log.Printf("[Export] saved %s", path)
}
