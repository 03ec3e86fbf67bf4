package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// DefaultPanLawDB is the attenuation applied to both channels at centre by
// the default stereo scheme. -6 dB sums mono-compatibly; -3 dB is common
// for headphone monitoring.
const DefaultPanLawDB = -6

// panWidth spans the default scheme's pan domain: hard left is -100,
// hard right is +100.
const panWidth = 200

// PanScheme maps a pan value to one decibel gain per output channel.
// The length of the returned slice sets the output channel count.
type PanScheme func(pan float64) []float64

// StereoScheme returns the default symmetric logarithmic stereo scheme for
// the given pan law. Pan values range over [-100, 100]; at 0 both channels
// sit at the pan law attenuation, and each extreme silences the far channel.
func StereoScheme(panLawDB float64) PanScheme {
	shape := func(x float64) float64 {
		return math.Log(x/panWidth+0.5) * (-panLawDB / math.Ln2)
	}
	return func(pan float64) []float64 {
		return []float64{shape(-pan), shape(pan)}
	}
}

// PanOption configures a Pan transform.
type PanOption func(*Pan)

// WithPanLaw sets the pan law in dB used by the default stereo scheme.
func WithPanLaw(db float64) PanOption {
	return func(p *Pan) {
		p.law = db
		p.scheme = nil
	}
}

// WithScheme replaces the panning scheme entirely. The pan law option has
// no effect on a custom scheme.
func WithScheme(s PanScheme) PanOption {
	return func(p *Pan) {
		p.scheme = s
	}
}

// Pan spreads a mono buffer into a multichannel image. The pan parameter
// (scalar or curve) is fed through the scheme, which yields one dB gain
// per output channel. Realizing against a non-mono buffer fails.
type Pan struct {
	pan    Param
	scheme PanScheme
	law    float64
}

// NewPan returns a pan transform with the default stereo scheme.
func NewPan(pan Param, opts ...PanOption) *Pan {
	p := &Pan{pan: pan, law: DefaultPanLawDB}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.scheme == nil {
		p.scheme = StereoScheme(p.law)
	}
	return p
}

func (p *Pan) Realize(buf *audio.Buffer) error {
	if !buf.IsMono() {
		return fmt.Errorf("%w: panning is from mono to multichannel, have %d channels",
			ErrShapeMismatch, buf.NumChannels())
	}

	if !p.pan.IsCurve() {
		dBs := p.scheme(p.pan.scalar)
		if err := buf.FromMono(len(dBs)); err != nil {
			return err
		}
		for ch, db := range dBs {
			buf.ScaleChannel(ch, 0, buf.Length(), core.DBToLinear(db))
		}
		return nil
	}

	vals := p.pan.crv.Flatten(buf.SampleRate())
	endDBs := p.scheme(p.pan.crv.Endpoint())
	channels := len(endDBs)

	if err := buf.FromMono(channels); err != nil {
		return err
	}

	// Per-sample gains for the curve region, one slice per output channel.
	gains := make([][]float64, channels)
	for ch := range gains {
		gains[ch] = make([]float64, len(vals))
	}
	for i, v := range vals {
		dBs := p.scheme(v)
		for ch := range gains {
			gains[ch][i] = core.DBToLinear(dBs[ch])
		}
	}

	for ch := range channels {
		buf.MulChannel(ch, 0, gains[ch])
		if len(vals) < buf.Length() {
			buf.ScaleChannel(ch, len(vals), buf.Length(), core.DBToLinear(endDBs[ch]))
		}
	}
	return nil
}

// Repan reroutes channels through an explicit mapping: output channel i
// takes its content from source channel mapping[i], or is silenced when
// the entry is [Silent]. The new image is assembled from a snapshot before
// committing, so a source channel can feed several outputs.
type Repan struct {
	mapping []int
}

// Silent marks a Repan output channel as silent.
const Silent = -1

// NewRepan returns a repan transform. The mapping length must equal the
// channel count of the buffers it is realized against.
func NewRepan(mapping ...int) *Repan {
	m := make([]int, len(mapping))
	copy(m, mapping)
	return &Repan{mapping: m}
}

func (r *Repan) Realize(buf *audio.Buffer) error {
	if len(r.mapping) != buf.NumChannels() {
		return fmt.Errorf("%w: mapping covers %d channels, buffer has %d",
			ErrShapeMismatch, len(r.mapping), buf.NumChannels())
	}
	for _, src := range r.mapping {
		if src != Silent && (src < 0 || src >= buf.NumChannels()) {
			return fmt.Errorf("%w: source channel %d out of range", ErrShapeMismatch, src)
		}
	}

	snapshot := buf.Copy()
	for ch, src := range r.mapping {
		dst := buf.Channel(ch)
		if src == Silent {
			core.Zero(dst)
			continue
		}
		copy(dst, snapshot.Channel(src))
	}
	return nil
}

// Mono collapses a multichannel buffer to one channel by summing.
type Mono struct{}

// NewMono returns a mono summing transform.
func NewMono() *Mono { return &Mono{} }

func (*Mono) Realize(buf *audio.Buffer) error {
	buf.SumToMono()
	return nil
}
