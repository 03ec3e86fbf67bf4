// Package signal provides buffer-producing sources consumed as sub-signals
// by transform.Combine and as synthesis starting points.
//
// A source realizes into a fresh mono buffer at a requested sample rate and
// then runs its attached transforms, so a fully shaped voice (oscillator
// plus envelope plus filter) can travel as a single transform.Signal value.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/transform"
)

// ErrInvalidParams is returned when source parameters are out of range.
var ErrInvalidParams = errors.New("signal: invalid parameters")

// Option configures a source.
type Option func(*config)

type config struct {
	transforms transform.Chain
}

// WithTransforms attaches transforms that run, in order, on every buffer
// the source realizes.
func WithTransforms(ts ...transform.Transform) Option {
	return func(cfg *config) {
		cfg.transforms = append(cfg.transforms, ts...)
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func realizeMono(sampleRate, duration float64, cfg config, fill func(out []float64, sampleRate float64)) (*audio.Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParams, sampleRate)
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration must be >= 0: %f", ErrInvalidParams, duration)
	}

	buf, err := audio.New(1, core.NumSamples(duration, sampleRate), sampleRate)
	if err != nil {
		return nil, err
	}
	fill(buf.Channel(0), sampleRate)

	if err := cfg.transforms.Realize(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Sine is a fixed-frequency sine oscillator.
type Sine struct {
	frequency float64
	amplitude float64
	duration  float64
	cfg       config
}

// NewSine returns a sine source with the given frequency in Hz, linear
// amplitude and duration in seconds.
func NewSine(frequency, amplitude, duration float64, opts ...Option) *Sine {
	return &Sine{
		frequency: frequency,
		amplitude: amplitude,
		duration:  duration,
		cfg:       applyOptions(opts),
	}
}

func (s *Sine) Realize(sampleRate float64) (*audio.Buffer, error) {
	return realizeMono(sampleRate, s.duration, s.cfg, func(out []float64, rate float64) {
		step := 2 * math.Pi * s.frequency / rate
		for i := range out {
			out[i] = s.amplitude * math.Sin(step*float64(i))
		}
	})
}

// Silence is a zero-valued source, useful as a timeline spacer to hang
// transforms or combined sub-signals on.
type Silence struct {
	duration float64
	cfg      config
}

// NewSilence returns a silent source of the given duration in seconds.
func NewSilence(duration float64, opts ...Option) *Silence {
	return &Silence{duration: duration, cfg: applyOptions(opts)}
}

func (s *Silence) Realize(sampleRate float64) (*audio.Buffer, error) {
	return realizeMono(sampleRate, s.duration, s.cfg, func([]float64, float64) {})
}

// WhiteNoise is a seeded uniform noise source. The same seed yields the
// same samples at the same rate, so renders are reproducible.
type WhiteNoise struct {
	amplitude float64
	duration  float64
	seed      int64
	cfg       config
}

// NewWhiteNoise returns a noise source with samples uniform in
// [-amplitude, amplitude].
func NewWhiteNoise(amplitude, duration float64, seed int64, opts ...Option) *WhiteNoise {
	return &WhiteNoise{
		amplitude: amplitude,
		duration:  duration,
		seed:      seed,
		cfg:       applyOptions(opts),
	}
}

func (s *WhiteNoise) Realize(sampleRate float64) (*audio.Buffer, error) {
	return realizeMono(sampleRate, s.duration, s.cfg, func(out []float64, _ float64) {
		rng := rand.New(rand.NewSource(s.seed))
		for i := range out {
			out[i] = (rng.Float64()*2 - 1) * s.amplitude
		}
	})
}
