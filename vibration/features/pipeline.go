package features

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tap/vibration/preprocess"
)

// DescriptorVersion is the pipeline descriptor format written by this
// package.
const DescriptorVersion = 1

// ErrUnsupportedVersion indicates a descriptor written by a newer or unknown
// format revision.
var ErrUnsupportedVersion = errors.New("features: unsupported descriptor version")

// Pipeline is the complete signal-to-vector configuration. It is persisted
// with a trained model so inference rebuilds the exact training layout.
type Pipeline struct {
	// Version 0 marks a descriptor saved before versioning and is read as
	// version 1.
	Version    int               `json:"version" yaml:"version"`
	Preprocess preprocess.Config `json:"preprocess" yaml:"preprocess"`
	Features   Selection         `json:"features" yaml:"features"`
}

// NewPipeline returns a current-version pipeline.
func NewPipeline(cfg preprocess.Config, sel Selection) Pipeline {
	return Pipeline{Version: DescriptorVersion, Preprocess: cfg, Features: sel}
}

// DefaultPipeline uses the default preprocessing and the core triplet only.
func DefaultPipeline() Pipeline {
	return NewPipeline(preprocess.DefaultConfig(), SelectNone())
}

// Validate checks the descriptor version.
func (p Pipeline) Validate() error {
	switch p.Version {
	case 0, DescriptorVersion:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	}
}

// Names returns the feature names in vector order.
func (p Pipeline) Names() []string { return p.Features.Names() }

// Width returns the vector length.
func (p Pipeline) Width() int { return p.Features.Width() }

// Run validates x, preprocesses it and extracts the selected features.
// Preprocessing warnings are returned alongside a successful result.
func (p Pipeline) Run(x []float64, sampleRate float64) (Set, []preprocess.Warning, error) {
	if err := p.Validate(); err != nil {
		return Set{}, nil, err
	}
	if err := preprocess.Validate(x, sampleRate); err != nil {
		return Set{}, nil, err
	}

	res := preprocess.Run(x, sampleRate, p.Preprocess)

	set, err := ExtractNamed(res.Samples, res.SampleRate, p.Features)
	if err != nil {
		return Set{}, nil, fmt.Errorf("features: after preprocessing: %w", err)
	}
	return set, res.Warnings, nil
}

// Named is Run without the warnings.
func (p Pipeline) Named(x []float64, sampleRate float64) (Set, error) {
	set, _, err := p.Run(x, sampleRate)
	return set, err
}

// Vector is Named reduced to values.
func (p Pipeline) Vector(x []float64, sampleRate float64) (Vector, error) {
	set, err := p.Named(x, sampleRate)
	if err != nil {
		return nil, err
	}
	return set.Vector(), nil
}
