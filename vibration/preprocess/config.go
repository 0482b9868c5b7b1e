package preprocess

import (
	"github.com/cwbudde/algo-tap/dsp/window"
	"gopkg.in/yaml.v3"
)

// Config selects the preprocessing stages. The zero value of an optional
// field means "skip that stage".
type Config struct {
	// Detrend subtracts the arithmetic mean.
	Detrend bool `json:"detrend" yaml:"detrend" mapstructure:"detrend"`
	// Window is applied over the full captured length.
	Window window.Type `json:"window" yaml:"window" mapstructure:"window"`
	// ResampleRateHz resamples to this rate when > 0.
	ResampleRateHz float64 `json:"resample_rate_hz,omitempty" yaml:"resample_rate_hz,omitempty" mapstructure:"resample_rate_hz"`
	// TargetLength crops or zero-pads to this many samples when > 0.
	TargetLength int `json:"target_length,omitempty" yaml:"target_length,omitempty" mapstructure:"target_length"`
	// Align places the crop or padding for TargetLength.
	Align Align `json:"length_align" yaml:"length_align" mapstructure:"length_align"`
}

// DefaultConfig returns detrend on, Hann window, no resampling, no length
// change and center alignment.
func DefaultConfig() Config {
	return Config{
		Detrend: true,
		Window:  window.TypeHann,
		Align:   AlignCenter,
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. Absent keys keep their current
// value; "window: null" disables windowing like "window: false".
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	if err := value.Decode((*plain)(c)); err != nil {
		return err
	}

	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "window" && value.Content[i+1].ShortTag() == "!!null" {
			c.Window = window.TypeNone
		}
	}
	return nil
}
