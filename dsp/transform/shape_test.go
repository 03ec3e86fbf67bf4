package transform

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

// constSignal realizes a fixed sample matrix at any requested rate.
type constSignal struct {
	data [][]float64
}

func (s constSignal) Realize(sampleRate float64) (*audio.Buffer, error) {
	data := make([][]float64, len(s.data))
	for ch := range data {
		data[ch] = make([]float64, len(s.data[ch]))
		copy(data[ch], s.data[ch])
	}
	return audio.FromSamples(data, sampleRate)
}

// failSignal always fails to realize.
type failSignal struct{ err error }

func (s failSignal) Realize(float64) (*audio.Buffer, error) { return nil, s.err }

func TestShift(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1, 2, 3}, 10)

	if err := NewShiftSamples(2).Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{0, 0, 1, 2, 3}, 0)

	byTime := testutil.MonoBuffer(t, []float64{1, 2}, 10)
	if err := NewShiftDuration(0.5).Realize(byTime); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, byTime.Channel(0), []float64{0, 0, 0, 0, 0, 1, 2}, 0)
}

func TestExtend(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1, 2}, 10)

	if err := NewExtend(0.3).Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{1, 2, 0, 0, 0}, 0)
}

func TestReverse(t *testing.T) {
	buf := testutil.StereoBuffer(t, []float64{1, 2, 3}, []float64{4, 5, 6}, 44100)

	if err := NewReverse().Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{3, 2, 1}, 0)
	testutil.RequireSliceNearlyEqual(t, buf.Channel(1), []float64{6, 5, 4}, 0)
}

func TestSlice_TimeRange(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10)

	if err := NewSlice(0, 1, 0.2, 0.5).Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{2, 3, 4}, 0)
}

func TestSlice_ToEnd(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{0, 1, 2, 3, 4}, 10)

	if err := NewSlice(0, 1, 0.2, ToEnd).Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{2, 3, 4}, 0)
}

func TestSlice_ChannelRange(t *testing.T) {
	buf := testutil.StereoBuffer(t, []float64{1, 1}, []float64{2, 2}, 44100)

	if err := NewSlice(1, 2, 0, ToEnd).Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	if buf.NumChannels() != 1 {
		t.Fatalf("got %d channels, want 1", buf.NumChannels())
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{2, 2}, 0)
}

func TestSlice_MonoBroadcast(t *testing.T) {
	// Slicing a mono buffer across two channels first spreads it, so the
	// slice can address the virtual stereo image.
	buf := testutil.MonoBuffer(t, []float64{1, 2}, 44100)

	if err := NewSlice(0, 2, 0, ToEnd).Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}
	if buf.NumChannels() != 2 {
		t.Fatalf("got %d channels, want 2", buf.NumChannels())
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{1, 2}, 0)
	testutil.RequireSliceNearlyEqual(t, buf.Channel(1), []float64{1, 2}, 0)
}

func TestSlice_Invalid(t *testing.T) {
	buf := testutil.StereoBuffer(t, []float64{1, 1}, []float64{2, 2}, 10)

	if err := NewSlice(1, 1, 0, ToEnd).Realize(buf); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("empty channel range: expected ErrShapeMismatch, got %v", err)
	}
	if err := NewSlice(0, 3, 0, ToEnd).Realize(buf); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("channel range too wide: expected ErrShapeMismatch, got %v", err)
	}
	if err := NewSlice(0, 2, 0, 5).Realize(buf); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("time range past end: expected ErrInvalidConfig, got %v", err)
	}
}

func TestCombine_AdditiveMix(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1, 1, 1, 1}, 10)

	c, err := NewCombine(0, 1, 0.1, constSignal{data: [][]float64{{5, 5}}})
	if err != nil {
		t.Fatalf("NewCombine: %v", err)
	}
	if err := c.Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}

	// Samples outside the mix window are untouched.
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{1, 6, 6, 1}, 0)
}

func TestCombine_ExtendsBuffer(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1, 1}, 10)

	c, err := NewCombine(0, 1, 0.3, constSignal{data: [][]float64{{2, 2}}})
	if err != nil {
		t.Fatalf("NewCombine: %v", err)
	}
	if err := c.Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{1, 1, 0, 2, 2}, 0)
}

func TestCombine_ExpandsChannels(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1, 1}, 10)

	c, err := NewCombine(1, 2, 0, constSignal{data: [][]float64{{3, 3}}})
	if err != nil {
		t.Fatalf("NewCombine: %v", err)
	}
	if err := c.Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}

	if buf.NumChannels() != 2 {
		t.Fatalf("got %d channels, want 2", buf.NumChannels())
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{1, 1}, 0)
	testutil.RequireSliceNearlyEqual(t, buf.Channel(1), []float64{3, 3}, 0)
}

func TestCombine_MonoSubSignalBroadcasts(t *testing.T) {
	buf := testutil.StereoBuffer(t, []float64{1, 1}, []float64{2, 2}, 10)

	c, err := NewCombine(0, 2, 0, constSignal{data: [][]float64{{1, 1}}})
	if err != nil {
		t.Fatalf("NewCombine: %v", err)
	}
	if err := c.Realize(buf); err != nil {
		t.Fatalf("Realize: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, buf.Channel(0), []float64{2, 2}, 0)
	testutil.RequireSliceNearlyEqual(t, buf.Channel(1), []float64{3, 3}, 0)
}

func TestCombine_WidthMismatch(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1}, 10)

	c, err := NewCombine(0, 1, 0, constSignal{data: [][]float64{{1}, {1}}})
	if err != nil {
		t.Fatalf("NewCombine: %v", err)
	}
	if err := c.Realize(buf); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestNewCombine_Invalid(t *testing.T) {
	if _, err := NewCombine(0, 1, 0, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("nil signal: expected ErrInvalidConfig, got %v", err)
	}
	if _, err := NewCombine(1, 1, 0, constSignal{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("empty channel range: expected ErrInvalidConfig, got %v", err)
	}
	if _, err := NewCombine(-1, 1, 0, constSignal{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("negative channel: expected ErrInvalidConfig, got %v", err)
	}
}

func TestCombine_SubSignalError(t *testing.T) {
	buf := testutil.MonoBuffer(t, []float64{1}, 10)

	subErr := errors.New("synthesis failed")
	c, err := NewCombine(0, 1, 0, failSignal{err: subErr})
	if err != nil {
		t.Fatalf("NewCombine: %v", err)
	}
	if err := c.Realize(buf); !errors.Is(err, subErr) {
		t.Fatalf("expected wrapped sub-signal error, got %v", err)
	}
}
