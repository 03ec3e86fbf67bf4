package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/audio"
)

// Response evaluates the transfer function of a designer at a single
// frequency by direct evaluation of H(z) on the unit circle:
//
//	H(e^jw) = sum_n b[n]*e^(-jwn) / sum_m a[m]*e^(-jwm)
func Response(d Designer, freqHz, sampleRate float64) (complex128, error) {
	rawB, rawA, err := d.Coefficients(sampleRate)
	if err != nil {
		return 0, err
	}
	b, a, err := Normalize(rawB, rawA)
	if err != nil {
		return 0, err
	}

	w := 2 * math.Pi * freqHz / sampleRate

	var num, den complex128
	for n, c := range b {
		num += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(n)))
	}
	for m, c := range a {
		den += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(m)))
	}
	if den == 0 {
		return 0, fmt.Errorf("%w: transfer function pole at %f Hz", ErrInvalidParams, freqHz)
	}
	return num / den, nil
}

// MagnitudeDB returns the magnitude response at a single frequency in
// decibels.
func MagnitudeDB(d Designer, freqHz, sampleRate float64) (float64, error) {
	h, err := Response(d, freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return 20 * math.Log10(cmplx.Abs(h)), nil
}

// MagnitudeSweep evaluates the magnitude response at each of the given
// frequencies.
func MagnitudeSweep(d Designer, freqsHz []float64, sampleRate float64) ([]float64, error) {
	out := make([]float64, len(freqsHz))
	for i, f := range freqsHz {
		h, err := Response(d, f, sampleRate)
		if err != nil {
			return nil, err
		}
		out[i] = cmplx.Abs(h)
	}
	return out, nil
}

// ImpulseSpectrum runs a unit impulse through the designer's realization
// and returns the magnitude spectrum of the first fftSize output samples.
// fftSize must be a power of two. For an FIR this is the magnitude of the
// tap DFT; for an IIR it approximates the frequency response with the
// impulse tail truncated at fftSize.
func ImpulseSpectrum(f Filter, fftSize int, sampleRate float64) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: fft size must be a power of two >= 2: %d", ErrInvalidParams, fftSize)
	}

	impulse, err := impulseBuffer(fftSize, sampleRate)
	if err != nil {
		return nil, err
	}
	if err := f.Realize(impulse); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, v := range impulse.Channel(0) {
		in[i] = complex(v, 0)
	}
	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, in); err != nil {
		return nil, err
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func impulseBuffer(length int, sampleRate float64) (*audio.Buffer, error) {
	buf, err := audio.New(1, length, sampleRate)
	if err != nil {
		return nil, err
	}
	buf.Set(0, 0, 1)
	return buf, nil
}
