package audio

import (
	"github.com/cwbudde/algo-vecmath"
)

// Scale multiplies every sample in the buffer by gain.
func (b *Buffer) Scale(gain float64) {
	for ch := range b.data {
		vecmath.ScaleBlockInPlace(b.data[ch], gain)
	}
}

// ScaleChannel multiplies samples [start, end) of channel ch by gain.
// The range is clamped to the channel length.
func (b *Buffer) ScaleChannel(ch int, start, end int, gain float64) {
	start, end = clampRange(start, end, b.Length())
	if start == end {
		return
	}
	vecmath.ScaleBlockInPlace(b.data[ch][start:end], gain)
}

// MulChannel multiplies channel ch element-wise by values, starting at
// sample offset start. Excess values beyond the channel end are ignored.
func (b *Buffer) MulChannel(ch, start int, values []float64) {
	if start < 0 || start >= b.Length() {
		return
	}
	dst := b.data[ch][start:]
	if len(values) > len(dst) {
		values = values[:len(dst)]
	}
	vecmath.MulBlockInPlace(dst[:len(values)], values)
}

// SumToMono collapses the buffer to a single channel holding the sample-wise
// sum of all channels.
func (b *Buffer) SumToMono() {
	if b.IsMono() {
		return
	}

	sum := b.data[0]
	for ch := 1; ch < len(b.data); ch++ {
		vecmath.AddBlockInPlace(sum, b.data[ch])
	}
	b.data = b.data[:1]
}

// AddFrom adds src into channel chDst starting at sample offset start.
// Excess source samples beyond the channel end are ignored.
func (b *Buffer) AddFrom(chDst, start int, src []float64) {
	if start < 0 || start >= b.Length() {
		return
	}
	dst := b.data[chDst][start:]
	if len(src) > len(dst) {
		src = src[:len(dst)]
	}
	vecmath.AddBlockInPlace(dst[:len(src)], src)
}
