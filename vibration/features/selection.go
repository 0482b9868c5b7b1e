package features

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extra is a bit set of optional features.
type Extra uint8

// Optional features, in layout order.
const (
	ExtraSpectralCentroid Extra = 1 << iota
	ExtraSpectralBandwidth
	ExtraZCR
	ExtraTopPeaks
	ExtraACLag

	// AllExtras selects every optional feature.
	AllExtras = ExtraSpectralCentroid | ExtraSpectralBandwidth | ExtraZCR | ExtraTopPeaks | ExtraACLag
)

// DefaultTopKPeaks is the number of dominant frequencies reported by the
// top_peaks extra when not configured.
const DefaultTopKPeaks = 3

var extraOrder = []Extra{
	ExtraSpectralCentroid,
	ExtraSpectralBandwidth,
	ExtraZCR,
	ExtraTopPeaks,
	ExtraACLag,
}

var extraNames = map[Extra]string{
	ExtraSpectralCentroid:  NameSpectralCentroid,
	ExtraSpectralBandwidth: NameSpectralBandwidth,
	ExtraZCR:               NameZCR,
	ExtraTopPeaks:          "top_peaks",
	ExtraACLag:             NameACLag,
}

// String returns the configuration name of a single extra, or a
// comma-separated list for a combination.
func (e Extra) String() string {
	if n, ok := extraNames[e]; ok {
		return n
	}
	return strings.Join(e.names(), ",")
}

func (e Extra) names() []string {
	out := make([]string, 0, len(extraOrder))
	for _, x := range extraOrder {
		if e&x != 0 {
			out = append(out, extraNames[x])
		}
	}
	return out
}

// ParseExtra resolves an extra by its configuration name. known is false for
// unrecognised names.
func ParseExtra(name string) (e Extra, known bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for x, n := range extraNames {
		if n == name {
			return x, true
		}
	}
	return 0, false
}

// Selection chooses the optional features appended after the core triplet.
type Selection struct {
	Extras Extra
	// TopKPeaks is the number of values contributed by ExtraTopPeaks.
	// Values below 1 are treated as 1; see [Selection.TopK].
	TopKPeaks int
}

// SelectNone selects only the core triplet.
func SelectNone() Selection {
	return Selection{TopKPeaks: DefaultTopKPeaks}
}

// SelectAll selects every extra with k top peaks.
func SelectAll(k int) Selection {
	return Selection{Extras: AllExtras, TopKPeaks: k}
}

// SelectExtras selects extras by configuration name. Unknown names are
// ignored.
func SelectExtras(k int, names ...string) Selection {
	sel := Selection{TopKPeaks: k}
	for _, n := range names {
		if e, ok := ParseExtra(n); ok {
			sel.Extras |= e
		}
	}
	return sel
}

// Has reports whether every extra in e is selected.
func (s Selection) Has(e Extra) bool {
	return s.Extras&e == e
}

// TopK returns the effective number of top peaks, at least 1.
func (s Selection) TopK() int {
	return max(1, s.TopKPeaks)
}

// Names returns the feature names in vector order.
func (s Selection) Names() []string {
	out := make([]string, 0, s.Width())
	out = append(out, NamePeakFreq, NameDecayRate, NameEnergy)
	if s.Has(ExtraSpectralCentroid) {
		out = append(out, NameSpectralCentroid)
	}
	if s.Has(ExtraSpectralBandwidth) {
		out = append(out, NameSpectralBandwidth)
	}
	if s.Has(ExtraZCR) {
		out = append(out, NameZCR)
	}
	if s.Has(ExtraTopPeaks) {
		for i := 1; i <= s.TopK(); i++ {
			out = append(out, TopPeakName(i))
		}
	}
	if s.Has(ExtraACLag) {
		out = append(out, NameACLag)
	}
	return out
}

// Width returns the vector length produced under s.
func (s Selection) Width() int {
	n := 3
	for _, e := range extraOrder {
		if !s.Has(e) {
			continue
		}
		if e == ExtraTopPeaks {
			n += s.TopK()
		} else {
			n++
		}
	}
	return n
}

// selectionDoc is the serialised form. Extra is either a boolean (all or
// nothing) or a list of names.
type selectionDoc struct {
	Extra     any  `json:"extra" yaml:"extra"`
	TopKPeaks *int `json:"top_k_peaks,omitempty" yaml:"top_k_peaks,omitempty"`
}

func (s Selection) doc() selectionDoc {
	k := s.TopKPeaks
	d := selectionDoc{TopKPeaks: &k}
	switch s.Extras & AllExtras {
	case 0:
		d.Extra = false
	case AllExtras:
		d.Extra = true
	default:
		d.Extra = s.Extras.names()
	}
	return d
}

func (s *Selection) fromDoc(d selectionDoc) error {
	if d.Extra != nil {
		extras, err := parseExtraValue(d.Extra)
		if err != nil {
			return err
		}
		s.Extras = extras
	}
	if d.TopKPeaks != nil {
		s.TopKPeaks = *d.TopKPeaks
	}
	return nil
}

// parseExtraValue accepts the decoded "extra" field: nil or false for none,
// true for all, a name or list of names otherwise. Unknown names are
// dropped.
func parseExtraValue(raw any) (Extra, error) {
	switch t := raw.(type) {
	case nil:
		return 0, nil
	case bool:
		if t {
			return AllExtras, nil
		}
		return 0, nil
	case string:
		e, _ := ParseExtra(t)
		return e, nil
	case []string:
		return SelectExtras(0, t...).Extras, nil
	case []any:
		var out Extra
		for _, v := range t {
			name, ok := v.(string)
			if !ok {
				return 0, fmt.Errorf("features: extra list entries must be names, got %T", v)
			}
			if e, ok := ParseExtra(name); ok {
				out |= e
			}
		}
		return out, nil
	default:
		return 0, fmt.Errorf("features: extra must be a boolean or a list of names, got %T", raw)
	}
}

// MarshalJSON implements json.Marshaler.
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

// UnmarshalJSON implements json.Unmarshaler. Missing or null fields keep
// their current value.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var d selectionDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	return s.fromDoc(d)
}

// MarshalYAML implements yaml.Marshaler.
func (s Selection) MarshalYAML() (any, error) {
	return s.doc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as
// UnmarshalJSON.
func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	var d selectionDoc
	if err := value.Decode(&d); err != nil {
		return err
	}
	return s.fromDoc(d)
}
