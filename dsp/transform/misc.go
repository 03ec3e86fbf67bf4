package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Downsample reduces the effective sample rate by an integer factor using
// sample-and-hold: every factor-th sample is copied over the samples that
// follow it. The buffer length and nominal sample rate are unchanged, so
// the aliasing of the naive decimation is audible by design.
type Downsample struct {
	factor int
}

// NewDownsample returns a rough downsampling transform. factor must be
// >= 2; a nonzero phase offset is declared but not implemented.
func NewDownsample(factor, phase int) (*Downsample, error) {
	if factor < 2 {
		return nil, fmt.Errorf("%w: downsample factor must be >= 2: %d", ErrInvalidConfig, factor)
	}
	if phase < 0 || phase >= factor {
		return nil, fmt.Errorf("%w: phase %d outside [0, %d)", ErrInvalidConfig, phase, factor)
	}
	if phase != 0 {
		return nil, fmt.Errorf("%w: nonzero downsample phase", ErrUnsupported)
	}
	return &Downsample{factor: factor}, nil
}

func (d *Downsample) Realize(buf *audio.Buffer) error {
	for ch := range buf.NumChannels() {
		samples := buf.Channel(ch)
		for i := 0; i < len(samples); i += d.factor {
			hold := samples[i]
			for j := i + 1; j < i+d.factor && j < len(samples); j++ {
				samples[j] = hold
			}
		}
	}
	return nil
}

// SelfProduct multiplies the signal by its own image, optionally reversed,
// with a constant offset added to the modulator to keep it away from zero:
//
//	y[t] = x[t] * (add + m[t])
//
// where m is x itself or x reversed. With bothWays the offset follows the
// modulator sign instead: y[t] = x[t] * (add*sign(m[t]) + m[t]).
type SelfProduct struct {
	forward  bool
	add      float64
	bothWays bool
}

// NewSelfProduct returns a self-multiplication transform.
func NewSelfProduct(forward bool, add float64, bothWays bool) *SelfProduct {
	return &SelfProduct{forward: forward, add: add, bothWays: bothWays}
}

func (s *SelfProduct) Realize(buf *audio.Buffer) error {
	for ch := range buf.NumChannels() {
		samples := buf.Channel(ch)

		// Snapshot the modulator so reading is not raced by the write.
		mod := make([]float64, len(samples))
		copy(mod, samples)
		if !s.forward {
			core.Reverse(mod)
		}

		for i := range samples {
			if s.bothWays {
				samples[i] *= s.add*sign(mod[i]) + mod[i]
			} else {
				samples[i] *= s.add + mod[i]
			}
		}
	}
	return nil
}

func sign(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Copysign(1, x)
}
