package window

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestGenerateHannSymmetric(t *testing.T) {
	for _, n := range []int{2, 3, 8, 63, 64} {
		w := Generate(TypeHann, n)
		if len(w) != n {
			t.Fatalf("len=%d, want %d", len(w), n)
		}

		if math.Abs(w[0]) > 1e-15 || math.Abs(w[n-1]) > 1e-15 {
			t.Fatalf("n=%d: endpoints = %v, %v, want 0", n, w[0], w[n-1])
		}

		for i := 0; i < n/2; i++ {
			if math.Abs(w[i]-w[n-1-i]) > 1e-12 {
				t.Fatalf("n=%d: w[%d]=%v != w[%d]=%v", n, i, w[i], n-1-i, w[n-1-i])
			}
		}
	}
}

func TestGenerateHannMatchesClosedForm(t *testing.T) {
	const n = 17

	w := Generate(TypeHann, n)
	for i, v := range w {
		want := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("w[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestGenerateSingleSample(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeHann} {
		w := Generate(typ, 1)
		if len(w) != 1 || w[0] != 1 {
			t.Fatalf("%v: Generate(1) = %v, want [1]", typ, w)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}

	if _, err := Hann(-1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestGeneratePeriodic(t *testing.T) {
	w := Generate(TypeHann, 4, WithPeriodic())
	want := []float64{0, 0.5, 1, 0.5}

	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestApplyNoneIsIdentity(t *testing.T) {
	buf := []float64{1, -2, 3}
	Apply(TypeNone, buf)

	if buf[0] != 1 || buf[1] != -2 || buf[2] != 3 {
		t.Fatalf("buf = %v, want unchanged", buf)
	}
}

func TestApplyUnknownTypeIsIdentity(t *testing.T) {
	buf := []float64{1, 1, 1}
	Apply(Type(42), buf)

	for i, v := range buf {
		if v != 1 {
			t.Fatalf("buf[%d] = %v, want 1", i, v)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name  string
		want  Type
		known bool
	}{
		{name: "hann", want: TypeHann, known: true},
		{name: " HANN ", want: TypeHann, known: true},
		{name: "hanning", want: TypeHann, known: true},
		{name: "", want: TypeNone, known: true},
		{name: "none", want: TypeNone, known: true},
		{name: "false", want: TypeNone, known: true},
		{name: "kaiser", want: TypeNone, known: false},
		{name: "blackman", want: TypeNone, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ParseType(tt.name)
			if got != tt.want || known != tt.known {
				t.Fatalf("ParseType(%q) = (%v, %v), want (%v, %v)", tt.name, got, known, tt.want, tt.known)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("Hann")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}

	text, err := typ.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	if string(text) != "hann" {
		t.Fatalf("MarshalText = %q, want hann", text)
	}

	if err := typ.UnmarshalText([]byte("tukey")); err != nil {
		t.Fatalf("UnmarshalText(unknown) returned error: %v", err)
	}
	if typ != TypeNone {
		t.Fatalf("unknown name decoded to %v, want none", typ)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{in: `"hann"`, want: TypeHann},
		{in: `"HANN"`, want: TypeHann},
		{in: `"none"`, want: TypeNone},
		{in: `"blackman"`, want: TypeNone},
		{in: `null`, want: TypeNone},
		{in: `false`, want: TypeNone},
		{in: `true`, want: TypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ := TypeHann
			if tt.want == TypeHann {
				typ = TypeNone
			}
			if err := json.Unmarshal([]byte(tt.in), &typ); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if typ != tt.want {
				t.Fatalf("Unmarshal(%s) = %v, want %v", tt.in, typ, tt.want)
			}
		})
	}
}

func TestApplyCoefficientsLengthMismatch(t *testing.T) {
	_, err := ApplyCoefficients([]float64{1, 2}, []float64{1})
	if !errors.Is(err, errMismatchedLength) {
		t.Fatalf("err = %v, want errMismatchedLength", err)
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{2, 4}, []float64{0.5, 0.25})
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}

	if out[0] != 1 || out[1] != 1 {
		t.Fatalf("out = %v, want [1 1]", out)
	}
}
