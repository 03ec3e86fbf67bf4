package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/transform"
)

// ErrInvalidParams is returned when filter parameters are out of range.
var ErrInvalidParams = errors.New("filter: invalid parameters")

// Designer produces a transfer function as feedforward (b) and feedback
// (a) coefficient sequences for a given sample rate. A purely feedforward
// design returns a = (1).
type Designer interface {
	Coefficients(sampleRate float64) (b, a []float64, err error)
}

// Filter is a realizable transform that exposes its coefficients.
type Filter interface {
	transform.Transform
	Designer
}

// Normalize scales b and a so that a[0] == 1, dividing every coefficient
// by the original a[0]. It returns fresh slices.
func Normalize(b, a []float64) ([]float64, []float64, error) {
	if len(a) == 0 {
		return nil, nil, fmt.Errorf("%w: empty feedback coefficients", ErrInvalidParams)
	}
	if a[0] == 0 {
		return nil, nil, fmt.Errorf("%w: leading feedback coefficient is zero", ErrInvalidParams)
	}

	inv := 1 / a[0]
	bn := make([]float64, len(b))
	for i, c := range b {
		bn[i] = c * inv
	}
	an := make([]float64, len(a))
	for i, c := range a {
		an[i] = c * inv
	}
	return bn, an, nil
}

// NormalizeTaps scales h so its taps sum to one. A zero-sum tap set has
// no meaningful normalization and is rejected.
func NormalizeTaps(h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: empty tap set", ErrInvalidParams)
	}

	total := 0.0
	for _, c := range h {
		total += c
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: taps sum to zero", ErrInvalidParams)
	}

	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = c / total
	}
	return out, nil
}

func validateCutoff(cutoff, sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParams, sampleRate)
	}
	if cutoff <= 0 || cutoff >= sampleRate*0.5 {
		return fmt.Errorf("%w: cutoff %f outside (0, %f)", ErrInvalidParams, cutoff, sampleRate*0.5)
	}
	return nil
}
