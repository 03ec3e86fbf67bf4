package testutil

import (
	"testing"

	"github.com/cwbudde/algo-synth/dsp/audio"
)

// MonoBuffer wraps a single channel of samples in a buffer, copying the
// input so the caller's slice stays untouched.
func MonoBuffer(t *testing.T, samples []float64, sampleRate float64) *audio.Buffer {
	t.Helper()
	data := make([]float64, len(samples))
	copy(data, samples)
	buf, err := audio.FromSamples([][]float64{data}, sampleRate)
	if err != nil {
		t.Fatalf("building mono buffer: %v", err)
	}
	return buf
}

// StereoBuffer wraps two channels of samples in a buffer, copying both.
func StereoBuffer(t *testing.T, left, right []float64, sampleRate float64) *audio.Buffer {
	t.Helper()
	l := make([]float64, len(left))
	copy(l, left)
	r := make([]float64, len(right))
	copy(r, right)
	buf, err := audio.FromSamples([][]float64{l, r}, sampleRate)
	if err != nil {
		t.Fatalf("building stereo buffer: %v", err)
	}
	return buf
}

// RequireBufferNearlyEqual fails t if the buffers differ in shape, rate,
// or content beyond eps per sample.
func RequireBufferNearlyEqual(t *testing.T, got, want *audio.Buffer, eps float64) {
	t.Helper()
	if got.NumChannels() != want.NumChannels() {
		t.Fatalf("channel mismatch: got %d, want %d", got.NumChannels(), want.NumChannels())
	}
	if got.SampleRate() != want.SampleRate() {
		t.Fatalf("sample rate mismatch: got %v, want %v", got.SampleRate(), want.SampleRate())
	}
	for ch := range got.NumChannels() {
		RequireSliceNearlyEqual(t, got.Channel(ch), want.Channel(ch), eps)
	}
}
