package filter

import (
	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// IIR is an infinite impulse response filter with fixed coefficients,
// realized through the direct-form recursion. Coefficients are normalized
// at construction so the leading feedback coefficient is one.
type IIR struct {
	b []float64
	a []float64
}

// NewIIR returns an IIR filter for the given feedforward (b) and feedback
// (a) coefficients. A leading feedback coefficient of zero is a
// configuration error.
func NewIIR(feedforward, feedback []float64) (*IIR, error) {
	b, a, err := Normalize(feedforward, feedback)
	if err != nil {
		return nil, err
	}
	return &IIR{b: b, a: a}, nil
}

// Coefficients returns the normalized transfer function.
func (f *IIR) Coefficients(float64) (b, a []float64, err error) {
	bc := make([]float64, len(f.b))
	copy(bc, f.b)
	ac := make([]float64, len(f.a))
	copy(ac, f.a)
	return bc, ac, nil
}

func (f *IIR) Realize(buf *audio.Buffer) error {
	return realizeIIR(f, buf)
}

// realizeIIR runs the direct-form recursion for the designer's transfer
// function at the buffer's sample rate:
//
//	y[t] = sum_n b[n]*x[t-n] - sum_{m>=1} a[m]*y[t-m]
//
// The input is left-padded with len(a)-1 zeros to seed the feedback
// history, and the output is truncated to the input length. The recursion
// is sequential along the time axis of each channel; channels are
// independent. Stability of the coefficient set is the caller's concern.
func realizeIIR(d Designer, buf *audio.Buffer) error {
	rawB, rawA, err := d.Coefficients(buf.SampleRate())
	if err != nil {
		return err
	}
	b, a, err := Normalize(rawB, rawA)
	if err != nil {
		return err
	}

	n := buf.Length()
	if n == 0 {
		return nil
	}

	pad := len(a) - 1
	for ch := range buf.NumChannels() {
		samples := buf.Channel(ch)

		x := make([]float64, pad+n)
		copy(x[pad:], samples)
		y := make([]float64, pad+n)

		for t := pad; t < len(x); t++ {
			var acc float64
			for i := 0; i < len(b) && i <= t; i++ {
				acc += b[i] * x[t-i]
			}
			for m := 1; m < len(a); m++ {
				acc -= a[m] * y[t-m]
			}
			y[t] = core.FlushDenormals(acc)
		}

		copy(samples, y[pad:])
	}
	return nil
}
