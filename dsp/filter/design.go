package filter

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/audio"
)

// beta computes the bilinear-transform pole coefficient of the one-pole
// prototype at the pre-warped digital corner angle Fc = 2*pi*fc/rate.
// For any cutoff strictly between zero and Nyquist, beta lies in (-1, 1),
// so the resulting pole is stable by construction.
func beta(cutoff, sampleRate float64) float64 {
	fc := 2 * math.Pi * cutoff / sampleRate
	t := math.Tan(fc / 2)
	return (1 - t) / (1 + t)
}

// SimpleLowPass is a first-order low-pass filter.
type SimpleLowPass struct {
	cutoff float64
}

// NewSimpleLowPass returns a first-order low-pass with the given cutoff
// frequency in Hz.
func NewSimpleLowPass(cutoff float64) *SimpleLowPass {
	return &SimpleLowPass{cutoff: cutoff}
}

func (f *SimpleLowPass) Coefficients(sampleRate float64) (b, a []float64, err error) {
	if err := validateCutoff(f.cutoff, sampleRate); err != nil {
		return nil, nil, err
	}

	be := beta(f.cutoff, sampleRate)
	b = []float64{(1 - be) / 2, (1 - be) / 2}
	a = []float64{1, -be}
	return b, a, nil
}

func (f *SimpleLowPass) Realize(buf *audio.Buffer) error {
	return realizeIIR(f, buf)
}

// SimpleHighPass is a first-order high-pass filter.
type SimpleHighPass struct {
	cutoff float64
}

// NewSimpleHighPass returns a first-order high-pass with the given cutoff
// frequency in Hz.
func NewSimpleHighPass(cutoff float64) *SimpleHighPass {
	return &SimpleHighPass{cutoff: cutoff}
}

func (f *SimpleHighPass) Coefficients(sampleRate float64) (b, a []float64, err error) {
	if err := validateCutoff(f.cutoff, sampleRate); err != nil {
		return nil, nil, err
	}

	be := beta(f.cutoff, sampleRate)
	b = []float64{(1 + be) / 2, -(1 + be) / 2}
	a = []float64{1, -be}
	return b, a, nil
}

func (f *SimpleHighPass) Realize(buf *audio.Buffer) error {
	return realizeIIR(f, buf)
}

// SimpleLowShelf is a first-order low-shelving filter with a linear gain
// applied below the corner frequency.
type SimpleLowShelf struct {
	cutoff float64
	gain   float64
}

// NewSimpleLowShelf returns a first-order low shelf. gain is linear, not
// decibels.
func NewSimpleLowShelf(cutoff, gain float64) *SimpleLowShelf {
	return &SimpleLowShelf{cutoff: cutoff, gain: gain}
}

func (f *SimpleLowShelf) Coefficients(sampleRate float64) (b, a []float64, err error) {
	if err := validateCutoff(f.cutoff, sampleRate); err != nil {
		return nil, nil, err
	}

	be := beta(f.cutoff, sampleRate)
	g := f.gain
	b = []float64{
		(1 + g + (1-g)*be) / 2,
		-(1 - g + (1+g)*be) / 2,
	}
	a = []float64{1, -be}
	return b, a, nil
}

func (f *SimpleLowShelf) Realize(buf *audio.Buffer) error {
	return realizeIIR(f, buf)
}

// SimpleHighShelf is a first-order high-shelving filter with a linear
// gain applied above the corner frequency.
type SimpleHighShelf struct {
	cutoff float64
	gain   float64
}

// NewSimpleHighShelf returns a first-order high shelf. gain is linear,
// not decibels.
func NewSimpleHighShelf(cutoff, gain float64) *SimpleHighShelf {
	return &SimpleHighShelf{cutoff: cutoff, gain: gain}
}

func (f *SimpleHighShelf) Coefficients(sampleRate float64) (b, a []float64, err error) {
	if err := validateCutoff(f.cutoff, sampleRate); err != nil {
		return nil, nil, err
	}

	be := beta(f.cutoff, sampleRate)
	g := f.gain
	b = []float64{
		(1 + g + (g-1)*be) / 2,
		(1 - g - (1+g)*be) / 2,
	}
	a = []float64{1, -be}
	return b, a, nil
}

func (f *SimpleHighShelf) Realize(buf *audio.Buffer) error {
	return realizeIIR(f, buf)
}
