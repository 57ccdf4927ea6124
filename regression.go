package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// StateBytes is an array of bytes that represents the current state of the
// World as perceived from the outside: the screen, the wish and every entity
// the Gui would draw. Two Worlds with the same StateBytes look the same on
// screen, even if their implementations differ.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	write := func(v any) {
		Check(binary.Write(buf, binary.LittleEndian, v))
	}
	write(int64(w.Screen))
	write(w.EnteredMs)
	write(w.CarpScale)
	write(w.TowerProgress)
	write(w.FooterAlpha)
	buf.WriteString(w.Wish.String())
	buf.WriteString(w.SubmittedWish)

	write(int64(len(w.Coins)))
	for _, c := range w.Coins {
		write(c.Pos)
		write(c.Alpha)
	}
	write(int64(len(w.Clusters)))
	for _, c := range w.Clusters {
		write(c.Pos)
		write(c.Size)
		write(c.Alpha)
		write(int64(c.Phase))
	}
	write(int64(len(w.Fragments)))
	for _, f := range w.Fragments {
		write(f.Pos)
		write(f.Alpha)
		write(f.Exploded)
		buf.WriteString(f.Text)
	}
	write(int64(len(w.FlyingAssets)))
	for _, a := range w.FlyingAssets {
		write(a.Pos)
		write(a.Rotation)
		write(a.Alpha)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies what happens on
// screen during a playthrough. It is a hash of the state of the World after
// every frame.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the World.
// - Compute the RegressionId for the same playthrough again.
// - If it changed, the refactoring changed what the user sees.
func RegressionId(p *Playthrough, sizes Sizes, measure TextMeasurer,
	nFonts int) string {
	hash := sha256.New()
	w := NewWorldFromPlaythrough(p, sizes, measure, nFonts)
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}
	return hex.EncodeToString(hash.Sum(nil))
}
