package transform

import (
	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/curve"
)

// Param is an automation parameter: either a fixed scalar or a curve.
// The zero value is the scalar 0. Construct with [Scalar] or [CurveParam];
// the variant is fixed at construction, not inspected at realize time.
type Param struct {
	crv    curve.Curve
	scalar float64
}

// Scalar returns a fixed-value parameter.
func Scalar(v float64) Param {
	return Param{scalar: v}
}

// CurveParam returns a time-varying parameter driven by c.
func CurveParam(c curve.Curve) Param {
	return Param{crv: c}
}

// IsCurve reports whether the parameter carries a curve.
func (p Param) IsCurve() bool { return p.crv != nil }

// applyMul multiplies channel ch of buf by the parameter, mapping each
// parameter value through toLinear first. Curve parameters cover
// [0, curve samples) with their flattened values and extend their endpoint
// value over the remainder of the channel.
func (p Param) applyMul(buf *audio.Buffer, ch int, toLinear func(float64) float64) {
	if p.crv == nil {
		buf.ScaleChannel(ch, 0, buf.Length(), toLinear(p.scalar))
		return
	}

	vals := p.crv.Flatten(buf.SampleRate())
	for i, v := range vals {
		vals[i] = toLinear(v)
	}
	buf.MulChannel(ch, 0, vals)

	if len(vals) < buf.Length() {
		buf.ScaleChannel(ch, len(vals), buf.Length(), toLinear(p.crv.Endpoint()))
	}
}

func linear(v float64) float64 { return v }
