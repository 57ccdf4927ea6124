package main

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

// Comb filter delays in frames at SampleRate. Mutually prime-ish lengths keep
// the echoes from piling up on the same beat.
var reverbCombDelays = [...]int{1116, 1188, 1277, 1356}

// Reverb holds the settings shared by every stream it wraps. The audio
// goroutine reads them while the game loop writes them, hence the mutex.
type Reverb struct {
	mu     sync.Mutex
	amount float64
}

func NewReverb() *Reverb {
	return &Reverb{}
}

// SetAmount sets how much reverb is applied, in [0, 1]. The amount is both
// the wet/dry mix and the decay time in seconds. 0 leaves the sound
// untouched.
func (r *Reverb) SetAmount(amount float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.amount = Clamp(amount, 0, 1)
}

func (r *Reverb) Amount() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.amount
}

// Wrap returns a stream that plays src through the reverb. src must be 16-bit
// little-endian stereo, which is what ebiten's decoders produce.
func (r *Reverb) Wrap(src io.ReadSeeker) *ReverbStream {
	s := &ReverbStream{src: src, reverb: r}
	for i, d := range reverbCombDelays {
		for ch := range s.combs[i] {
			s.combs[i][ch].buf = make([]float64, d)
		}
	}
	return s
}

type comb struct {
	buf []float64
	idx int
}

func (c *comb) process(x float64, feedback float64) float64 {
	y := c.buf[c.idx]
	c.buf[c.idx] = x + y*feedback
	c.idx = (c.idx + 1) % len(c.buf)
	return y
}

func (c *comb) clear() {
	clear(c.buf)
	c.idx = 0
}

type ReverbStream struct {
	src    io.ReadSeeker
	reverb *Reverb
	combs  [len(reverbCombDelays)][2]comb
}

func (s *ReverbStream) Read(p []byte) (int, error) {
	n, err := s.src.Read(p)
	amount := s.reverb.Amount()
	if amount == 0 {
		return n, err
	}

	// The echo of each comb must lose 60dB over the decay time.
	var feedback [len(reverbCombDelays)]float64
	for i, d := range reverbCombDelays {
		delaySec := float64(d) / SampleRate
		feedback[i] = math.Pow(10, -3*delaySec/amount)
	}

	const frameSize = 4
	for off := 0; off+frameSize <= n; off += frameSize {
		for ch := range 2 {
			pos := off + ch*2
			x := float64(int16(binary.LittleEndian.Uint16(p[pos:]))) / 32768
			wet := 0.0
			for i := range s.combs {
				wet += s.combs[i][ch].process(x, feedback[i])
			}
			wet /= float64(len(s.combs))
			y := Clamp(x+wet*amount, -1, 1)
			binary.LittleEndian.PutUint16(p[pos:], uint16(int16(y*32767)))
		}
	}
	return n, err
}

func (s *ReverbStream) Seek(offset int64, whence int) (int64, error) {
	for i := range s.combs {
		for ch := range s.combs[i] {
			s.combs[i][ch].clear()
		}
	}
	return s.src.Seek(offset, whence)
}
