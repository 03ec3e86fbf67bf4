package audio

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b, err := New(2, 5, 44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.NumChannels() != 2 || b.Length() != 5 {
		t.Fatalf("shape = (%d, %d), want (2, 5)", b.NumChannels(), b.Length())
	}
	if b.SampleRate() != 44100 {
		t.Errorf("SampleRate = %v, want 44100", b.SampleRate())
	}
	for ch := range 2 {
		for i := range 5 {
			if b.At(ch, i) != 0 {
				t.Fatalf("sample [%d, %d] not zero", ch, i)
			}
		}
	}
}

func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		channels int
		length   int
		rate     float64
	}{
		{"zero channels", 0, 5, 44100},
		{"negative length", 1, -1, 44100},
		{"zero rate", 1, 5, 0},
		{"negative rate", 1, 5, -44100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.channels, c.length, c.rate); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("err = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestFromSamples(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	b, err := FromSamples(data, 8000)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	b.Set(0, 0, 9)
	if data[0][0] != 9 {
		t.Error("FromSamples should wrap without copying")
	}

	if _, err := FromSamples([][]float64{{1, 2}, {3}}, 8000); !errors.Is(err, ErrRaggedMatrix) {
		t.Errorf("ragged matrix err = %v, want ErrRaggedMatrix", err)
	}
}

func TestDuration(t *testing.T) {
	b, _ := New(1, 4410, 44100)
	if got := b.Duration(); got != 0.1 {
		t.Errorf("Duration = %v, want 0.1", got)
	}
}

func TestResize(t *testing.T) {
	b, _ := New(2, 3, 8000)
	b.Set(0, 2, 5)
	b.Set(1, 0, 7)

	b.Resize(5)
	if b.Length() != 5 {
		t.Fatalf("Length = %d, want 5", b.Length())
	}
	if b.At(0, 2) != 5 || b.At(1, 0) != 7 {
		t.Error("Resize lost existing content")
	}
	if b.At(0, 3) != 0 || b.At(0, 4) != 0 {
		t.Error("Resize growth not zero-filled")
	}

	b.Resize(2)
	if b.Length() != 2 {
		t.Fatalf("Length = %d, want 2", b.Length())
	}

	// Regrow: the region exposed again must be silent, not stale.
	b.Resize(4)
	if b.At(0, 2) != 0 {
		t.Error("regrown region holds stale data")
	}
}

func TestExtendAndPushForward(t *testing.T) {
	b, _ := New(1, 2, 8000)
	b.Set(0, 0, 1)
	b.Set(0, 1, 2)

	b.Extend(2)
	if b.Length() != 4 || b.At(0, 2) != 0 || b.At(0, 3) != 0 {
		t.Fatalf("Extend: channel = %v", b.Channel(0))
	}

	b.PushForward(3)
	if b.Length() != 7 {
		t.Fatalf("Length = %d, want 7", b.Length())
	}
	want := []float64{0, 0, 0, 1, 2, 0, 0}
	for i, v := range want {
		if b.At(0, i) != v {
			t.Errorf("sample %d = %v, want %v", i, b.At(0, i), v)
		}
	}
}

func TestFromMono(t *testing.T) {
	b, _ := New(1, 3, 8000)
	b.Set(0, 1, 4)

	if err := b.FromMono(3); err != nil {
		t.Fatalf("FromMono: %v", err)
	}
	if b.NumChannels() != 3 {
		t.Fatalf("NumChannels = %d, want 3", b.NumChannels())
	}
	for ch := range 3 {
		if b.At(ch, 1) != 4 {
			t.Errorf("channel %d not a broadcast copy", ch)
		}
	}

	// Channels must be independent after broadcast.
	b.Set(1, 1, 9)
	if b.At(0, 1) != 4 || b.At(2, 1) != 4 {
		t.Error("broadcast channels alias each other")
	}

	if err := b.FromMono(2); !errors.Is(err, ErrNotMono) {
		t.Errorf("FromMono on multichannel: err = %v, want ErrNotMono", err)
	}
}

func TestToChannels(t *testing.T) {
	b, _ := New(2, 3, 8000)
	b.Set(1, 2, 6)

	b.ToChannels(4)
	if b.NumChannels() != 4 {
		t.Fatalf("NumChannels = %d, want 4", b.NumChannels())
	}
	if b.At(1, 2) != 6 {
		t.Error("expansion lost existing content")
	}
	if b.At(2, 2) != 0 || b.At(3, 0) != 0 {
		t.Error("new channels not silent")
	}

	b.ToChannels(2) // no-op
	if b.NumChannels() != 4 {
		t.Error("shrinking ToChannels should be a no-op")
	}
}

func TestCopy(t *testing.T) {
	b, _ := New(1, 2, 8000)
	b.Set(0, 0, 3)
	c := b.Copy()
	c.Set(0, 0, 7)
	if b.At(0, 0) != 3 {
		t.Error("Copy is not deep")
	}
	if c.SampleRate() != b.SampleRate() {
		t.Error("Copy lost sample rate")
	}
}

func TestMaxAbs(t *testing.T) {
	b, _ := New(2, 3, 8000)
	b.Set(0, 1, 0.5)
	b.Set(1, 2, -0.9)
	if got := b.MaxAbs(); got != 0.9 {
		t.Errorf("MaxAbs = %v, want 0.9", got)
	}
}

func TestZeroRegion(t *testing.T) {
	b, _ := New(2, 4, 8000)
	for ch := range 2 {
		for i := range 4 {
			b.Set(ch, i, 1)
		}
	}
	b.ZeroRegion(0, 1, 1, 3)
	want0 := []float64{1, 0, 0, 1}
	for i, v := range want0 {
		if b.At(0, i) != v {
			t.Errorf("ch0[%d] = %v, want %v", i, b.At(0, i), v)
		}
	}
	for i := range 4 {
		if b.At(1, i) != 1 {
			t.Errorf("ch1[%d] mutated", i)
		}
	}

	// Out-of-range indices are clamped, not a panic.
	b.ZeroRegion(-1, 99, -5, 99)
	if b.MaxAbs() != 0 {
		t.Error("clamped ZeroRegion should silence everything")
	}
}

func TestScaleAndMulChannel(t *testing.T) {
	b, _ := New(2, 3, 8000)
	for ch := range 2 {
		for i := range 3 {
			b.Set(ch, i, 2)
		}
	}

	b.Scale(0.5)
	if b.At(0, 0) != 1 || b.At(1, 2) != 1 {
		t.Fatalf("Scale: ch0=%v ch1=%v", b.Channel(0), b.Channel(1))
	}

	b.MulChannel(0, 1, []float64{3, 4})
	want := []float64{1, 3, 4}
	for i, v := range want {
		if b.At(0, i) != v {
			t.Errorf("ch0[%d] = %v, want %v", i, b.At(0, i), v)
		}
	}

	// Values past the channel end are ignored.
	b.MulChannel(1, 2, []float64{10, 10, 10})
	if b.At(1, 2) != 10 || b.At(1, 1) != 1 {
		t.Errorf("ch1 = %v", b.Channel(1))
	}
}

func TestAddFrom(t *testing.T) {
	b, _ := New(1, 4, 8000)
	b.Set(0, 1, 1)
	b.AddFrom(0, 1, []float64{2, 3})
	want := []float64{0, 3, 3, 0}
	for i, v := range want {
		if b.At(0, i) != v {
			t.Errorf("sample %d = %v, want %v", i, b.At(0, i), v)
		}
	}

	// Excess source samples are ignored.
	b.AddFrom(0, 3, []float64{1, 1, 1})
	if b.At(0, 3) != 1 {
		t.Errorf("sample 3 = %v, want 1", b.At(0, 3))
	}
}

func TestNarrow(t *testing.T) {
	b, _ := FromSamples([][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	}, 8000)

	if err := b.Narrow(1, 3, 1, 3); err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	if b.NumChannels() != 2 || b.Length() != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", b.NumChannels(), b.Length())
	}
	if b.At(0, 0) != 5 || b.At(1, 1) != 10 {
		t.Errorf("content = %v %v", b.Channel(0), b.Channel(1))
	}
}

func TestNarrow_Invalid(t *testing.T) {
	b, _ := New(2, 4, 8000)

	if err := b.Narrow(1, 1, 0, 4); err == nil {
		t.Error("empty channel range accepted")
	}
	if err := b.Narrow(0, 2, 2, 5); err == nil {
		t.Error("sample range past end accepted")
	}
}

func TestSumToMono(t *testing.T) {
	b, _ := FromSamples([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	}, 8000)

	b.SumToMono()
	if !b.IsMono() {
		t.Fatalf("channels = %d, want 1", b.NumChannels())
	}
	if b.At(0, 0) != 9 || b.At(0, 1) != 12 {
		t.Errorf("sum = %v", b.Channel(0))
	}

	// Idempotent on mono.
	b.SumToMono()
	if b.At(0, 0) != 9 {
		t.Errorf("second collapse changed content: %v", b.Channel(0))
	}
}
