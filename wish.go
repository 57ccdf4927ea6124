package main

import "unicode"

// DeleteRepeatMs is how often a held Backspace/Delete removes another
// character.
const DeleteRepeatMs = int64(100)

// WishBuffer is the text the user types on the wish screen.
type WishBuffer struct {
	Text         []rune
	DeleteHeld   bool
	LastDeleteMs int64
}

func (b *WishBuffer) String() string {
	return string(b.Text)
}

func (b *WishBuffer) Len() int {
	return len(b.Text)
}

func (b *WishBuffer) Empty() bool {
	return len(b.Text) == 0
}

// Append adds r if it is a printable character and reports whether it did.
func (b *WishBuffer) Append(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	b.Text = append(b.Text, r)
	return true
}

func (b *WishBuffer) DeleteLast() {
	if len(b.Text) > 0 {
		b.Text = b.Text[:len(b.Text)-1]
	}
}

// PressDelete removes a character right away and starts the auto-repeat.
func (b *WishBuffer) PressDelete(nowMs int64) {
	b.DeleteHeld = true
	b.DeleteLast()
	b.LastDeleteMs = nowMs
}

func (b *WishBuffer) ReleaseDelete() {
	b.DeleteHeld = false
}

// Repeat removes one more character if the delete key has been held for long
// enough since the last removal.
func (b *WishBuffer) Repeat(nowMs int64) {
	if b.DeleteHeld && nowMs-b.LastDeleteMs > DeleteRepeatMs {
		b.DeleteLast()
		b.LastDeleteMs = nowMs
	}
}

func (b *WishBuffer) Clear() {
	b.Text = b.Text[:0]
	b.DeleteHeld = false
	b.LastDeleteMs = 0
}

// HandleWishKeys applies the keyboard part of input to the wish. It returns
// true if the wish was submitted, in which case the World already moved on to
// the floating text.
func (w *World) HandleWishKeys(input PlayerInput) bool {
	for _, r := range input.Typed {
		if w.Wish.Append(r) {
			w.Cues = append(w.Cues, Cue{Kind: CueTyping, Index: w.RIndex(NTypingSounds)})
		}
	}

	if input.DeletePressed {
		w.Wish.PressDelete(w.NowMs)
	}
	if input.DeleteReleased {
		w.Wish.ReleaseDelete()
	}

	if input.EnterPressed && !w.Wish.Empty() {
		return w.Transition(FloatingTextScreen)
	}

	w.Wish.Repeat(w.NowMs)
	return false
}
