package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tap/vibration/features"
	"github.com/cwbudde/algo-tap/vibration/preprocess"
)

var (
	// ErrConfigurationMismatch indicates a classifier whose expected input or
	// output shape disagrees with the bundle's pipeline or class list.
	ErrConfigurationMismatch = errors.New("classify: configuration mismatch")
	// ErrNoClassifier indicates a bundle without a classifier.
	ErrNoClassifier = errors.New("classify: no classifier")
)

// DefaultConfidence is reported for a classifier that gives neither a
// confidence nor class probabilities.
const DefaultConfidence = 0.8

// Prediction is the raw classifier output.
type Prediction struct {
	Label string
	// Confidence in [0, 1]. Zero means "not reported".
	Confidence float64
	// Probabilities is optional and, when set, aligned with Bundle.Classes.
	Probabilities []float64
}

// Classifier maps a feature vector to a prediction. Implementations must be
// safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, v features.Vector) (Prediction, error)
}

// WidthReporter is implemented by classifiers that know their input width.
type WidthReporter interface {
	FeatureWidth() int
}

// Func adapts a function to Classifier.
type Func func(ctx context.Context, v features.Vector) (Prediction, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, v features.Vector) (Prediction, error) {
	return f(ctx, v)
}

// Result is a prediction together with the features it was made from.
type Result struct {
	Label         string
	Confidence    float64
	Probabilities map[string]float64
	Features      features.Set
	Warnings      []preprocess.Warning
}

// Bundle is a trained classifier and the pipeline it was trained under.
type Bundle struct {
	Pipeline   features.Pipeline
	Classes    []string
	Classifier Classifier
}

// Check reports whether the bundle can serve predictions.
func (b Bundle) Check() error {
	if b.Classifier == nil {
		return ErrNoClassifier
	}
	if err := b.Pipeline.Validate(); err != nil {
		return err
	}
	if wr, ok := b.Classifier.(WidthReporter); ok {
		if got, want := wr.FeatureWidth(), b.Pipeline.Width(); got != want {
			return fmt.Errorf("%w: classifier expects %d features, pipeline produces %d", ErrConfigurationMismatch, got, want)
		}
	}
	return nil
}

// Predict extracts features from x with the bundle's pipeline and classifies
// them.
func (b Bundle) Predict(ctx context.Context, x []float64, sampleRate float64) (Result, error) {
	if err := b.Check(); err != nil {
		return Result{}, err
	}

	set, warnings, err := b.Pipeline.Run(x, sampleRate)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	pred, err := b.Classifier.Classify(ctx, set.Vector())
	if err != nil {
		return Result{}, fmt.Errorf("classify: %w", err)
	}

	res := Result{
		Label:      pred.Label,
		Confidence: pred.Confidence,
		Features:   set,
		Warnings:   warnings,
	}

	if len(pred.Probabilities) == 0 {
		if res.Confidence == 0 {
			res.Confidence = DefaultConfidence
		}
		return res, nil
	}

	if len(pred.Probabilities) != len(b.Classes) {
		return Result{}, fmt.Errorf("%w: %d probabilities for %d classes", ErrConfigurationMismatch, len(pred.Probabilities), len(b.Classes))
	}

	res.Probabilities = make(map[string]float64, len(b.Classes))
	best := 0
	for i, p := range pred.Probabilities {
		res.Probabilities[b.Classes[i]] = p
		if p > pred.Probabilities[best] {
			best = i
		}
	}
	if res.Confidence == 0 {
		res.Confidence = pred.Probabilities[best]
	}
	if res.Label == "" {
		res.Label = b.Classes[best]
	}

	return res, nil
}
