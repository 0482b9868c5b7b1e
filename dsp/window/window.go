// Package window generates and applies analysis windows.
//
// Only the window kinds the vibration pipeline is calibrated against are
// provided. Names that do not match a known kind resolve to [TypeNone], so an
// unrecognised setting leaves the signal untouched instead of failing.
package window

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeNone leaves samples unchanged (rectangular window).
	TypeNone Type = iota
	// TypeHann is the symmetric Hann window; both endpoints are zero.
	TypeHann
)

var hannCoeffs = []float64{0.5, -0.5}

var names = map[Type]string{
	TypeNone: "none",
	TypeHann: "hann",
}

// String returns the canonical lower-case name of t.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "none"
}

// ParseType resolves a window name case-insensitively. Empty, "none",
// "false" and unknown names all map to TypeNone; known reports whether name
// was recognised.
func ParseType(name string) (t Type, known bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hann", "hanning":
		return TypeHann, true
	case "", "none", "false", "rectangular":
		return TypeNone, true
	default:
		return TypeNone, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// TypeNone without error.
func (t *Type) UnmarshalText(text []byte) error {
	*t, _ = ParseType(string(text))
	return nil
}

// UnmarshalJSON accepts a window name or any non-string value. null, false
// and other non-string values decode to TypeNone.
func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		*t = TypeNone
		return nil
	}
	return t.UnmarshalText([]byte(name))
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
//
// A length-1 window is [1], matching the usual convention that a single
// sample is passed through.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = evalWindow(t, x)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 || t == TypeNone {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func evalWindow(t Type, x float64) float64 {
	if x < 0 {
		x = 0
	}

	if x > 1 {
		x = 1
	}

	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
