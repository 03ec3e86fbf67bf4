package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/audio"
)

// LimiterOption configures a Limiter.
type LimiterOption func(*limiterConfig) error

type limiterConfig struct {
	maxAmplitude float64
	maxRatio     float64
	minAmplitude float64
	minRatio     float64

	maxCount int
	minCount int
}

// WithMaxAmplitude clips samples to [-amp, amp].
func WithMaxAmplitude(amp float64) LimiterOption {
	return func(cfg *limiterConfig) error {
		if amp < 0 || math.IsNaN(amp) {
			return fmt.Errorf("%w: max amplitude must be >= 0: %f", ErrInvalidConfig, amp)
		}
		cfg.maxAmplitude = amp
		cfg.maxCount++
		return nil
	}
}

// WithMaxRatio clips samples to the given ratio of the buffer peak.
func WithMaxRatio(ratio float64) LimiterOption {
	return func(cfg *limiterConfig) error {
		if ratio < 0 || math.IsNaN(ratio) {
			return fmt.Errorf("%w: max ratio must be >= 0: %f", ErrInvalidConfig, ratio)
		}
		cfg.maxRatio = ratio
		cfg.maxCount++
		return nil
	}
}

// WithMaxDB is declared for symmetry with the amplitude thresholds but is
// not implemented.
func WithMaxDB(db float64) LimiterOption {
	return func(*limiterConfig) error {
		return fmt.Errorf("%w: decibel-specified max threshold", ErrUnsupported)
	}
}

// WithMinAmplitude pushes samples out of the range (-amp, amp),
// preserving their sign.
func WithMinAmplitude(amp float64) LimiterOption {
	return func(cfg *limiterConfig) error {
		if amp < 0 || math.IsNaN(amp) {
			return fmt.Errorf("%w: min amplitude must be >= 0: %f", ErrInvalidConfig, amp)
		}
		cfg.minAmplitude = amp
		cfg.minCount++
		return nil
	}
}

// WithMinRatio pushes samples out of the given ratio of the buffer peak.
func WithMinRatio(ratio float64) LimiterOption {
	return func(cfg *limiterConfig) error {
		if ratio < 0 || math.IsNaN(ratio) {
			return fmt.Errorf("%w: min ratio must be >= 0: %f", ErrInvalidConfig, ratio)
		}
		cfg.minRatio = ratio
		cfg.minCount++
		return nil
	}
}

// WithMinDB is declared for symmetry with the amplitude thresholds but is
// not implemented.
func WithMinDB(db float64) LimiterOption {
	return func(*limiterConfig) error {
		return fmt.Errorf("%w: decibel-specified min threshold", ErrUnsupported)
	}
}

// Limiter clips samples exceeding a maximum threshold and/or pushes
// samples below a minimum threshold away from zero. Thresholds may be
// absolute amplitudes or ratios of the buffer peak; at most one maximum
// and one minimum specification may be supplied.
type Limiter struct {
	cfg limiterConfig
}

// NewLimiter builds a limiter from threshold options.
func NewLimiter(opts ...LimiterOption) (*Limiter, error) {
	var cfg limiterConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.maxCount > 1 {
		return nil, fmt.Errorf("%w: multiple max thresholds", ErrInvalidConfig)
	}
	if cfg.minCount > 1 {
		return nil, fmt.Errorf("%w: multiple min thresholds", ErrInvalidConfig)
	}

	return &Limiter{cfg: cfg}, nil
}

func (l *Limiter) Realize(buf *audio.Buffer) error {
	cfg := l.cfg

	if cfg.maxCount > 0 {
		maxAmp := cfg.maxAmplitude
		if cfg.maxRatio != 0 {
			maxAmp = cfg.maxRatio * buf.MaxAbs()
		}
		for ch := range buf.NumChannels() {
			samples := buf.Channel(ch)
			for i, v := range samples {
				if v > maxAmp {
					samples[i] = maxAmp
				} else if v < -maxAmp {
					samples[i] = -maxAmp
				}
			}
		}
	}

	if cfg.minCount > 0 {
		minAmp := cfg.minAmplitude
		if cfg.minRatio != 0 {
			minAmp = cfg.minRatio * buf.MaxAbs()
		}
		for ch := range buf.NumChannels() {
			samples := buf.Channel(ch)
			for i, v := range samples {
				if av := math.Abs(v); av < minAmp && av > 0 {
					samples[i] = math.Copysign(minAmp, v)
				}
			}
		}
	}

	return nil
}
