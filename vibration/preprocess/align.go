package preprocess

import (
	"encoding/json"
	"strings"
)

// Align selects where cropping and zero padding are applied by
// [NormalizeLength].
type Align int

const (
	// AlignCenter crops or pads symmetrically; an odd remainder goes to the
	// right.
	AlignCenter Align = iota
	// AlignLeft keeps the signal anchored at index 0: crops from and pads on
	// the right.
	AlignLeft
	// AlignRight keeps the signal anchored at its end: crops from and pads
	// on the left.
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseAlign resolves an alignment name case-insensitively. Anything that is
// not "left" or "right" is treated as center.
func ParseAlign(name string) Align {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	*a = ParseAlign(string(text))
	return nil
}

// UnmarshalJSON decodes a string name; null and non-string values select
// center.
func (a *Align) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		*a = AlignCenter
		return nil
	}
	return a.UnmarshalText([]byte(name))
}
