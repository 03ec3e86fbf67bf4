package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Gain applies per-channel gain in decibels. Parameter i drives channel i;
// channels without a parameter are left untouched.
type Gain struct {
	dBs []Param
}

// NewGain returns a gain transform with one dB parameter per channel.
func NewGain(dBs ...Param) *Gain {
	params := make([]Param, len(dBs))
	copy(params, dBs)
	return &Gain{dBs: params}
}

func (g *Gain) Realize(buf *audio.Buffer) error {
	if len(g.dBs) > buf.NumChannels() {
		return fmt.Errorf("%w: %d gain parameters for %d channels", ErrShapeMismatch, len(g.dBs), buf.NumChannels())
	}

	for ch, p := range g.dBs {
		p.applyMul(buf, ch, core.DBToLinear)
	}
	return nil
}

// Amplitude applies per-channel linear amplitude scaling. Parameter i
// drives channel i; channels without a parameter are left untouched.
type Amplitude struct {
	amps []Param
}

// NewAmplitude returns an amplitude transform with one linear parameter
// per channel.
func NewAmplitude(amps ...Param) *Amplitude {
	params := make([]Param, len(amps))
	copy(params, amps)
	return &Amplitude{amps: params}
}

func (a *Amplitude) Realize(buf *audio.Buffer) error {
	if len(a.amps) > buf.NumChannels() {
		return fmt.Errorf("%w: %d amplitude parameters for %d channels", ErrShapeMismatch, len(a.amps), buf.NumChannels())
	}

	for ch, p := range a.amps {
		p.applyMul(buf, ch, linear)
	}
	return nil
}

// fadeFloorDB is the attenuation a fade starts from (in) or ends at (out).
const fadeFloorDB = -50

// Fade ramps the level between silence and unity over a duration.
// A fade-in covers the start of the buffer, a fade-out its end; the ramp
// is linear in decibels from -50 dB.
type Fade struct {
	in       bool
	duration float64
}

// NewFadeIn returns a fade-in over the given duration in seconds.
func NewFadeIn(duration float64) *Fade {
	return &Fade{in: true, duration: duration}
}

// NewFadeOut returns a fade-out over the given duration in seconds.
func NewFadeOut(duration float64) *Fade {
	return &Fade{in: false, duration: duration}
}

func (f *Fade) Realize(buf *audio.Buffer) error {
	n := buf.NumSamples(f.duration)
	if n > buf.Length() {
		n = buf.Length()
	}
	if n == 0 {
		return nil
	}

	ramp := make([]float64, n)
	for i := range ramp {
		frac := 1.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		ramp[i] = core.DBToLinear(fadeFloorDB * (1 - frac))
	}

	start := 0
	if !f.in {
		core.Reverse(ramp)
		start = buf.Length() - n
	}

	for ch := range buf.NumChannels() {
		buf.MulChannel(ch, start, ramp)
	}
	return nil
}

// AmpFreq modulates the amplitude of all channels with a sine of the given
// frequency. size sets the modulation depth: the gain swings between
// 1-2*size and 1, centred on 1-size.
type AmpFreq struct {
	frequency float64
	size      float64
	phase     float64
}

// NewAmpFreq returns a sinusoidal amplitude modulation transform.
func NewAmpFreq(frequency, size, phase float64) *AmpFreq {
	return &AmpFreq{frequency: frequency, size: size, phase: phase}
}

func (a *AmpFreq) Realize(buf *audio.Buffer) error {
	n := buf.Length()
	if n == 0 {
		return nil
	}

	step := 2 * math.Pi * a.frequency / buf.SampleRate()
	mod := make([]float64, n)
	for i := range mod {
		mod[i] = math.Sin(a.phase+step*float64(i))*a.size + (1 - a.size)
	}

	for ch := range buf.NumChannels() {
		buf.MulChannel(ch, 0, mod)
	}
	return nil
}
