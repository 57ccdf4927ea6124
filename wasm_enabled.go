//go:build js && wasm

package main

import (
	"syscall/js"
)

func WriteFile(name string, data []byte) {
}

func MakeDir(name string) {
}

// saveExport hands an exported frame to the browser as a download. There is
// no file system to write to, so dir is ignored.
func saveExport(dir string, name string, data []byte) string {
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	blob := js.Global().Get("Blob").New([]any{arr},
		map[string]any{"type": exportMimeType(name)})
	url := js.Global().Get("URL").Call("createObjectURL", blob)

	doc := js.Global().Get("document")
	a := doc.Call("createElement", "a")
	a.Set("download", name)
	a.Set("href", url)
	body := doc.Get("body")
	body.Call("appendChild", a)
	a.Call("click")
	body.Call("removeChild", a)
	js.Global().Get("URL").Call("revokeObjectURL", url)
	return name
}
