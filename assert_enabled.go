//go:build assert_enabled

package main

// Assert crashes on a broken World invariant. It only does anything in builds
// tagged assert_enabled, Step calls it every frame.
func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
