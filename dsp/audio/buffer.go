package audio

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Errors returned by buffer constructors and shape operations.
var (
	ErrInvalidParams = errors.New("audio: invalid buffer parameters")
	ErrNotMono       = errors.New("audio: buffer is not mono")
	ErrRaggedMatrix  = errors.New("audio: channels differ in length")
)

// Buffer is a mutable multichannel sample matrix with a fixed sample rate.
// Samples are indexed [channel][frame].
type Buffer struct {
	data       [][]float64
	sampleRate float64
}

// New returns a zero-filled buffer with the given shape.
func New(channels, length int, sampleRate float64) (*Buffer, error) {
	if channels < 1 || length < 0 || sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: channels=%d length=%d rate=%f", ErrInvalidParams, channels, length, sampleRate)
	}

	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, length)
	}

	return &Buffer{data: data, sampleRate: sampleRate}, nil
}

// FromSamples wraps an existing channel-major matrix without copying.
// Mutations through the returned buffer are visible in data and vice versa.
// All channels must have the same length.
func FromSamples(data [][]float64, sampleRate float64) (*Buffer, error) {
	if len(data) < 1 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: channels=%d rate=%f", ErrInvalidParams, len(data), sampleRate)
	}

	for ch := 1; ch < len(data); ch++ {
		if len(data[ch]) != len(data[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrRaggedMatrix, ch, len(data[ch]), len(data[0]))
		}
	}

	return &Buffer{data: data, sampleRate: sampleRate}, nil
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.data) }

// Length returns the per-channel sample count.
func (b *Buffer) Length() int { return len(b.data[0]) }

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() float64 { return b.sampleRate }

// Duration returns the buffer duration in seconds.
func (b *Buffer) Duration() float64 { return float64(b.Length()) / b.sampleRate }

// IsMono reports whether the buffer has exactly one channel.
func (b *Buffer) IsMono() bool { return len(b.data) == 1 }

// Channel returns the underlying sample slice of channel ch.
func (b *Buffer) Channel(ch int) []float64 { return b.data[ch] }

// At returns the sample at [ch, i].
func (b *Buffer) At(ch, i int) float64 { return b.data[ch][i] }

// Set writes the sample at [ch, i].
func (b *Buffer) Set(ch, i int, v float64) { b.data[ch][i] = v }

// Resize sets the per-channel length to n. Existing content is preserved;
// growth is zero-filled, shrinking truncates.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}

	for ch := range b.data {
		old := b.data[ch]
		if n <= cap(old) {
			grown := old[:n]
			for i := len(old); i < n; i++ {
				grown[i] = 0
			}
			b.data[ch] = grown
			continue
		}

		grown := make([]float64, n)
		copy(grown, old)
		b.data[ch] = grown
	}
}

// Extend appends n samples of silence to every channel.
func (b *Buffer) Extend(n int) {
	if n <= 0 {
		return
	}
	b.Resize(b.Length() + n)
}

// PushForward prepends n samples of silence to every channel,
// shifting existing content forward in time.
func (b *Buffer) PushForward(n int) {
	if n <= 0 {
		return
	}

	length := b.Length()
	for ch := range b.data {
		shifted := make([]float64, length+n)
		copy(shifted[n:], b.data[ch])
		b.data[ch] = shifted
	}
}

// FromMono broadcasts a mono buffer to n identical channels.
func (b *Buffer) FromMono(n int) error {
	if !b.IsMono() {
		return fmt.Errorf("%w: have %d channels", ErrNotMono, b.NumChannels())
	}
	if n < 1 {
		return fmt.Errorf("%w: target channels %d", ErrInvalidParams, n)
	}

	src := b.data[0]
	data := make([][]float64, n)
	data[0] = src
	for ch := 1; ch < n; ch++ {
		dup := make([]float64, len(src))
		copy(dup, src)
		data[ch] = dup
	}
	b.data = data

	return nil
}

// ToChannels expands the buffer to n channels, zero-filling the new ones.
// Existing channel content is preserved. A target at or below the current
// channel count is a no-op.
func (b *Buffer) ToChannels(n int) {
	if n <= b.NumChannels() {
		return
	}

	length := b.Length()
	for ch := b.NumChannels(); ch < n; ch++ {
		b.data = append(b.data, make([]float64, length))
	}
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	data := make([][]float64, len(b.data))
	for ch := range b.data {
		dup := make([]float64, len(b.data[ch]))
		copy(dup, b.data[ch])
		data[ch] = dup
	}
	return &Buffer{data: data, sampleRate: b.sampleRate}
}

// Zero silences the whole buffer.
func (b *Buffer) Zero() {
	for ch := range b.data {
		core.Zero(b.data[ch])
	}
}

// ZeroRegion silences samples [start, end) on channels [chStart, chEnd).
// Ranges are clamped to the buffer shape.
func (b *Buffer) ZeroRegion(chStart, chEnd, start, end int) {
	chStart, chEnd = clampRange(chStart, chEnd, b.NumChannels())
	start, end = clampRange(start, end, b.Length())
	for ch := chStart; ch < chEnd; ch++ {
		core.Zero(b.data[ch][start:end])
	}
}

// Narrow restricts the buffer to channels [chStart, chEnd) and samples
// [start, end). The retained region stays a view of the original storage.
func (b *Buffer) Narrow(chStart, chEnd, start, end int) error {
	if chStart < 0 || chEnd > b.NumChannels() || chStart >= chEnd {
		return fmt.Errorf("%w: channel range [%d, %d) of %d", ErrInvalidParams, chStart, chEnd, b.NumChannels())
	}
	if start < 0 || end > b.Length() || start > end {
		return fmt.Errorf("%w: sample range [%d, %d) of %d", ErrInvalidParams, start, end, b.Length())
	}

	data := make([][]float64, 0, chEnd-chStart)
	for ch := chStart; ch < chEnd; ch++ {
		data = append(data, b.data[ch][start:end])
	}
	b.data = data

	return nil
}

// MaxAbs returns the largest absolute sample value across all channels.
func (b *Buffer) MaxAbs() float64 {
	peak := 0.0
	for ch := range b.data {
		for _, v := range b.data[ch] {
			av := math.Abs(v)
			if av > peak {
				peak = av
			}
		}
	}
	return peak
}

// NumSamples converts a duration in seconds to samples at the buffer rate.
func (b *Buffer) NumSamples(seconds float64) int {
	return core.NumSamples(seconds, b.sampleRate)
}

func clampRange(start, end, limit int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > limit {
		end = limit
	}
	if end < start {
		end = start
	}
	return start, end
}
