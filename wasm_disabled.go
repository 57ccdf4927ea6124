//go:build !(js && wasm)

package main

import (
	"os"
	"path/filepath"
)

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func MakeDir(name string) {
	err := os.MkdirAll(name, 0755)
	Check(err)
}

// saveExport writes an exported frame into dir and returns where it went.
func saveExport(dir string, name string, data []byte) string {
	MakeDir(dir)
	path := filepath.Join(dir, name)
	WriteFile(path, data)
	return path
}
