package transform

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Shift pushes the signal forward in time by prepending silence.
type Shift struct {
	duration float64
	samples  int
	bySecs   bool
}

// NewShiftDuration returns a shift of the given duration in seconds.
func NewShiftDuration(seconds float64) *Shift {
	return &Shift{duration: seconds, bySecs: true}
}

// NewShiftSamples returns a shift of an exact sample count.
func NewShiftSamples(samples int) *Shift {
	return &Shift{samples: samples}
}

func (s *Shift) Realize(buf *audio.Buffer) error {
	n := s.samples
	if s.bySecs {
		n = buf.NumSamples(s.duration)
	}
	buf.PushForward(n)
	return nil
}

// Extend appends silence after the signal.
type Extend struct {
	duration float64
}

// NewExtend returns an extension of the given duration in seconds.
func NewExtend(seconds float64) *Extend {
	return &Extend{duration: seconds}
}

func (e *Extend) Realize(buf *audio.Buffer) error {
	buf.Extend(buf.NumSamples(e.duration))
	return nil
}

// Reverse plays the signal backwards.
type Reverse struct{}

// NewReverse returns a time-reversal transform.
func NewReverse() *Reverse { return &Reverse{} }

func (*Reverse) Realize(buf *audio.Buffer) error {
	for ch := range buf.NumChannels() {
		core.Reverse(buf.Channel(ch))
	}
	return nil
}

// ToEnd marks a Slice time range as extending to the buffer end.
const ToEnd = -1

// Slice narrows the buffer to channels [ChanStart, ChanEnd) and the time
// range [TimeStart, TimeEnd) in seconds. TimeEnd may be [ToEnd]. A mono
// buffer sliced from channel 0 past one channel is first broadcast to the
// requested channel count.
type Slice struct {
	chanStart, chanEnd int
	timeStart, timeEnd float64
}

// NewSlice returns a slicing transform.
func NewSlice(chanStart, chanEnd int, timeStart, timeEnd float64) *Slice {
	return &Slice{chanStart: chanStart, chanEnd: chanEnd, timeStart: timeStart, timeEnd: timeEnd}
}

func (s *Slice) Realize(buf *audio.Buffer) error {
	if buf.IsMono() && s.chanStart == 0 && s.chanEnd > 1 {
		if err := buf.FromMono(s.chanEnd); err != nil {
			return err
		}
	}
	if s.chanStart < 0 || s.chanEnd > buf.NumChannels() || s.chanStart >= s.chanEnd {
		return fmt.Errorf("%w: channel range [%d, %d) of %d",
			ErrShapeMismatch, s.chanStart, s.chanEnd, buf.NumChannels())
	}

	start := buf.NumSamples(s.timeStart)
	end := buf.Length()
	if s.timeEnd != ToEnd {
		end = buf.NumSamples(s.timeEnd)
	}
	if start < 0 || end > buf.Length() || start > end {
		return fmt.Errorf("%w: time range [%d, %d) of %d samples",
			ErrInvalidConfig, start, end, buf.Length())
	}

	return buf.Narrow(s.chanStart, s.chanEnd, start, end)
}

// Combine realizes a nested signal into its own buffer and additively
// mixes it into the parent at a channel range and time offset. The parent
// is extended, and its channel count expanded, as needed to hold the
// sub-signal; regions it does not touch are left untouched.
type Combine struct {
	chanStart, chanEnd int
	offset             float64
	signal             Signal
}

// NewCombine returns a combining transform mixing sig into channels
// [chanStart, chanEnd) at the given time offset in seconds.
func NewCombine(chanStart, chanEnd int, offset float64, sig Signal) (*Combine, error) {
	if sig == nil {
		return nil, fmt.Errorf("%w: nil sub-signal", ErrInvalidConfig)
	}
	if chanStart < 0 || chanEnd <= chanStart {
		return nil, fmt.Errorf("%w: channel range [%d, %d)", ErrInvalidConfig, chanStart, chanEnd)
	}
	return &Combine{chanStart: chanStart, chanEnd: chanEnd, offset: offset, signal: sig}, nil
}

func (c *Combine) Realize(buf *audio.Buffer) error {
	sub, err := c.signal.Realize(buf.SampleRate())
	if err != nil {
		return fmt.Errorf("combine: realize sub-signal: %w", err)
	}

	width := c.chanEnd - c.chanStart
	if sub.NumChannels() != width && !sub.IsMono() {
		return fmt.Errorf("%w: sub-signal has %d channels for a %d-channel target",
			ErrShapeMismatch, sub.NumChannels(), width)
	}

	if c.chanEnd > buf.NumChannels() {
		buf.ToChannels(c.chanEnd)
	}

	start := buf.NumSamples(c.offset)
	if needed := start + sub.Length(); buf.Length() < needed {
		buf.Resize(needed)
	}

	for j := range width {
		src := 0
		if !sub.IsMono() {
			src = j
		}
		buf.AddFrom(c.chanStart+j, start, sub.Channel(src))
	}
	return nil
}
