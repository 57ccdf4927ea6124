package main

import (
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hajimehoshi/ebiten/v2"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data from
// disk can use a FS object and thus work the same if the files are embedded
// or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

func LoadImage(fsys FS, name string) *ebiten.Image {
	file, err := fsys.Open(name)
	Check(err)
	if err != nil {
		return nil
	}
	defer CloseFile(file)

	img, _, err := image.Decode(file)
	Check(err)
	if err != nil {
		return nil
	}

	return ebiten.NewImageFromImage(img)
}

// LoadImageOr loads name if it exists and otherwise returns whatever fallback
// generates. The ritual ships without its artwork; fallbacks keep it
// runnable until the real images are dropped into data/.
func LoadImageOr(fsys FS, name string, fallback func() *ebiten.Image) *ebiten.Image {
	if !FileExists(fsys, name) {
		return fallback()
	}
	return LoadImage(fsys, name)
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	err = yaml.Unmarshal(data, v)
	Check(err)
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// FolderWatcher tells if anything in a folder was modified since the last
// time it was asked. In developer mode it lets the config be edited while the
// ritual runs.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
