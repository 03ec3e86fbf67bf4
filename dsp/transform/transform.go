package transform

import (
	"errors"

	"github.com/cwbudde/algo-synth/dsp/audio"
)

// Errors returned by transform constructors and Realize implementations.
var (
	// ErrInvalidConfig reports mutually exclusive or out-of-range parameters.
	ErrInvalidConfig = errors.New("transform: invalid configuration")

	// ErrUnsupported reports a declared but unimplemented variant.
	ErrUnsupported = errors.New("transform: unsupported feature")

	// ErrShapeMismatch reports a channel-shape violation.
	ErrShapeMismatch = errors.New("transform: channel shape mismatch")
)

// Transform mutates an audio buffer in place. Implementations keep no
// state across invocations, so a single instance may be realized against
// any number of buffers.
type Transform interface {
	Realize(buf *audio.Buffer) error
}

// Signal produces a freshly realized buffer at a given sample rate.
// It is consumed by [Combine] to mix nested sub-signals into a parent
// buffer. Signals form a tree built bottom-up; a signal must not contain
// itself.
type Signal interface {
	Realize(sampleRate float64) (*audio.Buffer, error)
}

// Chain is an ordered pipeline of transforms realized sequentially
// against the same buffer.
type Chain []Transform

// Realize applies every transform in order, stopping at the first error.
func (c Chain) Realize(buf *audio.Buffer) error {
	for _, t := range c {
		if err := t.Realize(buf); err != nil {
			return err
		}
	}
	return nil
}
