package features

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Feature names.
const (
	NamePeakFreq          = "peak_freq"
	NameDecayRate         = "decay_rate"
	NameEnergy            = "energy"
	NameSpectralCentroid  = "spectral_centroid"
	NameSpectralBandwidth = "spectral_bandwidth"
	NameZCR               = "zcr"
	NameACLag             = "ac_lag_s"
)

// TopPeakName returns the name of the i-th (1-based) dominant frequency.
func TopPeakName(i int) string {
	return NamePeakFreq + "_" + strconv.Itoa(i)
}

// Vector is the positional feature vector.
type Vector []float64

// Feature is one named value.
type Feature struct {
	Name  string
	Value float64
}

// Set holds named features in vector order.
type Set struct {
	features []Feature
}

func newSet(capacity int) Set {
	return Set{features: make([]Feature, 0, capacity)}
}

func (s *Set) add(name string, v float64) {
	s.features = append(s.features, Feature{Name: name, Value: v})
}

// Len returns the number of features.
func (s Set) Len() int { return len(s.features) }

// Features returns a copy of the features in order.
func (s Set) Features() []Feature {
	return append([]Feature(nil), s.features...)
}

// Names returns the feature names in order.
func (s Set) Names() []string {
	out := make([]string, len(s.features))
	for i, f := range s.features {
		out[i] = f.Name
	}
	return out
}

// Get returns the value stored under name.
func (s Set) Get(name string) (float64, bool) {
	for _, f := range s.features {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Map returns the features as an unordered map.
func (s Set) Map() map[string]float64 {
	out := make(map[string]float64, len(s.features))
	for _, f := range s.features {
		out[f.Name] = f.Value
	}
	return out
}

// Vector returns the values in order.
func (s Set) Vector() Vector {
	out := make(Vector, len(s.features))
	for i, f := range s.features {
		out[i] = f.Value
	}
	return out
}

// MarshalJSON writes the set as a JSON object with keys in vector order.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.features {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
