package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tap/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-10)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestCorrelateDirect(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	result, err := CorrelateDirect(a, b)
	if err != nil {
		t.Fatalf("CorrelateDirect failed: %v", err)
	}

	// lag -2: 1*3; lag -1: 1*2+2*3; lag 0: 1+4+9; ...
	expected := []float64{3, 8, 14, 20, 26, 14, 5}
	testutil.RequireSliceNearlyEqual(t, result, expected, 1e-10)
}

func TestCorrelateFFTMatchesDirect(t *testing.T) {
	tests := []struct {
		name string
		n, m int
	}{
		{name: "short", n: 5, m: 3},
		{name: "equal", n: 100, m: 100},
		{name: "odd lengths", n: 257, m: 129},
		{name: "long kernel", n: 70, m: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.DeterministicNoise(1, 1, tt.n)
			b := testutil.DeterministicNoise(2, 1, tt.m)

			fft, err := CorrelateFFT(a, b)
			if err != nil {
				t.Fatalf("CorrelateFFT failed: %v", err)
			}

			direct, err := CorrelateDirect(a, b)
			if err != nil {
				t.Fatalf("CorrelateDirect failed: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, fft, direct, 1e-8)
		})
	}
}

func TestCorrelateErrors(t *testing.T) {
	for name, fn := range map[string]func(a, b []float64) ([]float64, error){
		"Correlate":       Correlate,
		"CorrelateDirect": CorrelateDirect,
		"CorrelateFFT":    CorrelateFFT,
	} {
		if _, err := fn(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("%s: expected ErrEmptyInput, got %v", name, err)
		}
	}

	if _, err := AutoCorrelateLags(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("AutoCorrelateLags: expected ErrEmptyInput, got %v", err)
	}
}

func TestAutoCorrelatePeaksAtZeroLag(t *testing.T) {
	n := 256

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Cos(2 * math.Pi * float64(i) / 32)
	}

	result, err := AutoCorrelate(signal)
	if err != nil {
		t.Fatalf("auto-correlation failed: %v", err)
	}

	peakIdx, _ := FindPeak(result)
	if expected := n - 1; peakIdx != expected {
		t.Errorf("peak at index %d, expected %d (lag %d)", peakIdx, expected, LagFromIndex(peakIdx, n))
	}
}

func TestAutoCorrelateLags(t *testing.T) {
	x := []float64{1, 2, 3}

	lags, err := AutoCorrelateLags(x)
	if err != nil {
		t.Fatalf("AutoCorrelateLags failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, lags, []float64{14, 8, 3}, 1e-10)
}

func TestAutoCorrelateLagsPeriod(t *testing.T) {
	// A 32-sample period shows up as the strongest non-zero lag.
	signal := make([]float64, 512)
	for i := range signal {
		signal[i] = math.Cos(2 * math.Pi * float64(i) / 32)
	}

	lags, err := AutoCorrelateLags(signal)
	if err != nil {
		t.Fatalf("AutoCorrelateLags failed: %v", err)
	}

	idx, _ := FindPeak(lags[1:])
	if got := idx + 1; got != 32 {
		t.Fatalf("strongest lag = %d, want 32", got)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{100, 128},
	}

	for _, tt := range tests {
		if result := nextPowerOf2(tt.input); result != tt.expected {
			t.Errorf("nextPowerOf2(%d) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLagConversion(t *testing.T) {
	lenB := 10

	for lag := -9; lag <= 9; lag++ {
		idx := IndexFromLag(lag, lenB)

		if recoveredLag := LagFromIndex(idx, lenB); recoveredLag != lag {
			t.Errorf("lag %d -> idx %d -> lag %d", lag, idx, recoveredLag)
		}
	}
}

func TestFindPeak(t *testing.T) {
	idx, val := FindPeak([]float64{1, 3, 3, 2})
	if idx != 1 || val != 3 {
		t.Errorf("FindPeak = (%d, %v), want (1, 3)", idx, val)
	}

	idx, val = FindPeak([]float64{})
	if idx != -1 || val != 0 {
		t.Errorf("expected (-1, 0) for empty slice, got (%d, %v)", idx, val)
	}
}
