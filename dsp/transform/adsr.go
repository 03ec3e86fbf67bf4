package transform

import (
	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/curve"
)

// ADSR applies an attack/hold/decay/sustain/release envelope. The leading
// segments (attack ramp, optional hold plateau, decay ramp down to the
// sustain level) cover the start of the buffer, the release ramp to zero
// is anchored to its end, and whatever lies between is held at the sustain
// level.
//
// Segment sample counts are computed from the durations independently of
// the buffer length. When attack+hold+decay+release exceeds the buffer
// duration the segments overlap and their factors stack multiplicatively
// in declared order; they are not clipped.
type ADSR struct {
	attack  float64
	hold    float64
	decay   float64
	sustain float64
	release float64
}

// NewADSR returns an envelope transform. attack, hold, decay and release
// are durations in seconds; sustain is a linear level.
func NewADSR(attack, hold, decay, sustain, release float64) *ADSR {
	return &ADSR{attack: attack, hold: hold, decay: decay, sustain: sustain, release: release}
}

func (e *ADSR) Realize(buf *audio.Buffer) error {
	rate := buf.SampleRate()

	onset := curve.NewConcat(
		curve.NewLine(0, 1, e.attack),
		curve.NewConstant(1, e.hold),
		curve.NewLine(1, e.sustain, e.decay),
	)
	onsetVals := onset.Flatten(rate)

	releaseVals := curve.NewLine(e.sustain, 0, e.release).Flatten(rate)
	releaseStart := buf.Length() - len(releaseVals)
	if releaseStart < 0 {
		// Envelope longer than the buffer: keep the release anchored to
		// the end by dropping its leading samples.
		releaseVals = releaseVals[-releaseStart:]
		releaseStart = 0
	}

	for ch := range buf.NumChannels() {
		buf.MulChannel(ch, 0, onsetVals)
		if len(onsetVals) < releaseStart {
			buf.ScaleChannel(ch, len(onsetVals), releaseStart, e.sustain)
		}
		buf.MulChannel(ch, releaseStart, releaseVals)
	}
	return nil
}
