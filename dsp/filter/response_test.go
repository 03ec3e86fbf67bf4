package filter

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func TestResponse_UnityFIR(t *testing.T) {
	fir, err := NewFIR(1)
	if err != nil {
		t.Fatalf("NewFIR: %v", err)
	}

	for _, freq := range []float64{0, 100, 1000, 10000} {
		h, err := Response(fir, freq, testRate)
		if err != nil {
			t.Fatalf("Response: %v", err)
		}
		testutil.RequireNearlyEqual(t, cmplx.Abs(h), 1, 1e-12)
	}
}

func TestResponse_TwoTapAverageNull(t *testing.T) {
	// The two-tap average has a null exactly at Nyquist.
	fir, err := NewFIR(1, 1)
	if err != nil {
		t.Fatalf("NewFIR: %v", err)
	}

	h, err := Response(fir, testRate/2, testRate)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	testutil.RequireNearlyEqual(t, cmplx.Abs(h), 0, 1e-12)
}

func TestMagnitudeSweep(t *testing.T) {
	lpf := NewSimpleLowPass(1000)

	freqs := []float64{100, 1000, 10000}
	mags, err := MagnitudeSweep(lpf, freqs, testRate)
	if err != nil {
		t.Fatalf("MagnitudeSweep: %v", err)
	}

	if len(mags) != len(freqs) {
		t.Fatalf("got %d magnitudes, want %d", len(mags), len(freqs))
	}
	for i := 1; i < len(mags); i++ {
		if mags[i] >= mags[i-1] {
			t.Fatalf("low-pass magnitude not monotone: %v", mags)
		}
	}
	testutil.RequireNearlyEqual(t, mags[1], 1/math.Sqrt2, 1e-3)
}

func TestImpulseSpectrum_MatchesClosedForm(t *testing.T) {
	fir, err := NewFIR(1, 2, 1)
	if err != nil {
		t.Fatalf("NewFIR: %v", err)
	}

	const fftSize = 64
	spec, err := ImpulseSpectrum(fir, fftSize, testRate)
	if err != nil {
		t.Fatalf("ImpulseSpectrum: %v", err)
	}
	if len(spec) != fftSize/2+1 {
		t.Fatalf("got %d bins, want %d", len(spec), fftSize/2+1)
	}

	// A FIR impulse response is exact within the FFT window, so each bin
	// must match the closed-form transfer function at the bin frequency.
	for bin, got := range spec {
		freq := float64(bin) * testRate / fftSize
		h, err := Response(fir, freq, testRate)
		if err != nil {
			t.Fatalf("Response: %v", err)
		}
		testutil.RequireNearlyEqual(t, got, cmplx.Abs(h), 1e-9)
	}
}

func TestImpulseSpectrum_Invalid(t *testing.T) {
	fir, err := NewFIR(1)
	if err != nil {
		t.Fatalf("NewFIR: %v", err)
	}

	for _, size := range []int{0, 1, 3, 100} {
		if _, err := ImpulseSpectrum(fir, size, testRate); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("size %d: expected ErrInvalidParams, got %v", size, err)
		}
	}
}
