package classify

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-tap/vibration/features"
	"github.com/cwbudde/algo-tap/vibration/preprocess"
	"gopkg.in/yaml.v3"
)

// legacyPipeline holds the settings assumed for a descriptor that omits
// them: default preprocessing and every extra with three top peaks, which
// is how unversioned models were trained.
func legacyPipeline() features.Pipeline {
	return features.Pipeline{
		Preprocess: preprocess.DefaultConfig(),
		Features:   features.SelectAll(features.DefaultTopKPeaks),
	}
}

// DecodeDescriptor reads a pipeline descriptor in YAML or JSON. Omitted
// sections take the legacy defaults. Unknown versions are rejected.
func DecodeDescriptor(r io.Reader) (features.Pipeline, error) {
	p := legacyPipeline()

	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return features.Pipeline{}, errors.New("classify: empty pipeline descriptor")
		}
		return features.Pipeline{}, fmt.Errorf("classify: invalid pipeline descriptor: %w", err)
	}

	if err := p.Validate(); err != nil {
		return features.Pipeline{}, err
	}
	return p, nil
}

// EncodeDescriptor writes p as YAML.
func EncodeDescriptor(w io.Writer, p features.Pipeline) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("classify: encode pipeline descriptor: %w", err)
	}
	return enc.Close()
}
