// Package curve provides time-parameterized scalar curves used to automate
// transform parameters.
//
// A [Curve] covers a bounded time domain. Flatten samples it over its own
// duration; Endpoint is the value a consumer holds once the curve ends
// (constant extrapolation). Curves are immutable once constructed.
package curve

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Curve is a scalar function over a bounded time domain.
type Curve interface {
	// Duration returns the curve's own duration in seconds.
	Duration() float64

	// NumSamples returns the flattened length at the given sample rate.
	NumSamples(sampleRate float64) int

	// Flatten samples the curve over its duration at the given rate.
	// The result has length NumSamples(sampleRate).
	Flatten(sampleRate float64) []float64

	// Endpoint returns the extrapolation value at and after the curve end.
	Endpoint() float64
}

// Constant holds a fixed value for a duration.
type Constant struct {
	value    float64
	duration float64
}

// NewConstant returns a constant curve.
func NewConstant(value, duration float64) Constant {
	return Constant{value: value, duration: duration}
}

func (c Constant) Duration() float64 { return c.duration }

func (c Constant) NumSamples(sampleRate float64) int {
	return core.NumSamples(c.duration, sampleRate)
}

func (c Constant) Flatten(sampleRate float64) []float64 {
	out := make([]float64, c.NumSamples(sampleRate))
	for i := range out {
		out[i] = c.value
	}
	return out
}

func (c Constant) Endpoint() float64 { return c.value }

// Line ramps linearly from a start to an end value.
type Line struct {
	start    float64
	end      float64
	duration float64
}

// NewLine returns a linear ramp curve.
func NewLine(start, end, duration float64) Line {
	return Line{start: start, end: end, duration: duration}
}

func (l Line) Duration() float64 { return l.duration }

func (l Line) NumSamples(sampleRate float64) int {
	return core.NumSamples(l.duration, sampleRate)
}

// Flatten samples the ramp with the end value excluded, so concatenating
// a line with a curve starting at the end value produces no repeated sample.
func (l Line) Flatten(sampleRate float64) []float64 {
	n := l.NumSamples(sampleRate)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	step := (l.end - l.start) / float64(n)
	for i := range out {
		out[i] = l.start + step*float64(i)
	}
	return out
}

func (l Line) Endpoint() float64 { return l.end }

// Logistic transitions between two values along a sigmoid.
type Logistic struct {
	start    float64
	end      float64
	duration float64
}

// NewLogistic returns an S-shaped transition curve.
func NewLogistic(start, end, duration float64) Logistic {
	return Logistic{start: start, end: end, duration: duration}
}

func (l Logistic) Duration() float64 { return l.duration }

func (l Logistic) NumSamples(sampleRate float64) int {
	return core.NumSamples(l.duration, sampleRate)
}

// Flatten evaluates the sigmoid over [-6, 6] of its argument, which keeps
// the residual step at either end below 0.3% of the value span.
func (l Logistic) Flatten(sampleRate float64) []float64 {
	n := l.NumSamples(sampleRate)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	const span = 6.0
	for i := range out {
		x := -span + 2*span*float64(i)/float64(n)
		out[i] = l.start + (l.end-l.start)/(1+math.Exp(-x))
	}
	return out
}

func (l Logistic) Endpoint() float64 { return l.end }
