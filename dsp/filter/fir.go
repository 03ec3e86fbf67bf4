package filter

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for the FIR accumulator and the
// per-tap scaled copy.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(accLen, tmpLen int) (acc, tmp []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := accLen + tmpLen
	buf.data = core.EnsureLen(buf.data, need)
	return buf.data[:accLen], buf.data[accLen:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// FIR is a finite impulse response filter realized as the sum of shifted,
// scaled copies of the input:
//
//	y[t] = sum_i h[i]*x[t-i]
//
// The accumulator spans n+|h|-1 samples per channel and the result is
// truncated back to n, so the filter tail past the signal end is
// discarded. Taps carry no sequential dependency; channels are processed
// independently.
type FIR struct {
	h []float64
}

// NewFIR returns a FIR filter with the given taps, normalized so they sum
// to one. A zero-sum tap set is a configuration error.
func NewFIR(taps ...float64) (*FIR, error) {
	h, err := NormalizeTaps(taps)
	if err != nil {
		return nil, err
	}
	return &FIR{h: h}, nil
}

// NewMovingAverage returns an averaging low-pass FIR of the given width,
// oblivious to sample rate.
func NewMovingAverage(width int) (*FIR, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: moving average width must be >= 1: %d", ErrInvalidParams, width)
	}

	h := make([]float64, width)
	for i := range h {
		h[i] = 1 / float64(width)
	}
	return &FIR{h: h}, nil
}

// Taps returns a copy of the normalized taps.
func (f *FIR) Taps() []float64 {
	h := make([]float64, len(f.h))
	copy(h, f.h)
	return h
}

// Coefficients returns the taps as a feedforward-only transfer function.
func (f *FIR) Coefficients(float64) (b, a []float64, err error) {
	return f.Taps(), []float64{1}, nil
}

func (f *FIR) Realize(buf *audio.Buffer) error {
	n := buf.Length()
	if n == 0 || len(f.h) == 1 {
		// A single normalized tap is unity gain.
		return nil
	}

	acc, tmp, scratch := getScratch(n+len(f.h)-1, n)
	defer putScratch(scratch)

	for ch := range buf.NumChannels() {
		samples := buf.Channel(ch)

		for i := range acc {
			acc[i] = 0
		}

		// One shifted, scaled copy of the input per tap.
		for i, hi := range f.h {
			vecmath.ScaleBlock(tmp, samples, hi)
			vecmath.AddBlockInPlace(acc[i:i+n], tmp)
		}

		copy(samples, acc[:n])
	}
	return nil
}
