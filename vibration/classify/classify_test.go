package classify

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tap/internal/testutil"
	"github.com/cwbudde/algo-tap/vibration/features"
	"github.com/cwbudde/algo-tap/vibration/preprocess"
)

// widthFunc is a classifier that also reports its input width.
type widthFunc struct {
	Func
	width int
}

func (w widthFunc) FeatureWidth() int { return w.width }

func constant(p Prediction) Func {
	return func(context.Context, features.Vector) (Prediction, error) {
		return p, nil
	}
}

func testSignal() []float64 {
	return testutil.DampedSine(300, 1.5, 1000, 1, 2000)
}

func TestPredictProbabilities(t *testing.T) {
	b := Bundle{
		Pipeline:   features.DefaultPipeline(),
		Classes:    []string{"glass", "metal", "wood"},
		Classifier: constant(Prediction{Probabilities: []float64{0.1, 0.2, 0.7}}),
	}

	res, err := b.Predict(context.Background(), testSignal(), 1000)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if res.Label != "wood" {
		t.Fatalf("Label = %q, want wood", res.Label)
	}
	if math.Abs(res.Confidence-0.7) > 1e-12 {
		t.Fatalf("Confidence = %v, want 0.7", res.Confidence)
	}
	if res.Probabilities["metal"] != 0.2 {
		t.Fatalf("Probabilities = %v", res.Probabilities)
	}
	if res.Features.Len() != 3 {
		t.Fatalf("Features.Len = %d, want 3", res.Features.Len())
	}
}

func TestPredictKeepsReportedLabelAndConfidence(t *testing.T) {
	b := Bundle{
		Pipeline:   features.DefaultPipeline(),
		Classes:    []string{"glass", "metal"},
		Classifier: constant(Prediction{Label: "glass", Confidence: 0.55, Probabilities: []float64{0.4, 0.6}}),
	}

	res, err := b.Predict(context.Background(), testSignal(), 1000)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if res.Label != "glass" || res.Confidence != 0.55 {
		t.Fatalf("got %q/%v, want glass/0.55", res.Label, res.Confidence)
	}
}

func TestPredictDefaultConfidence(t *testing.T) {
	b := Bundle{
		Pipeline:   features.DefaultPipeline(),
		Classifier: constant(Prediction{Label: "plastic"}),
	}

	res, err := b.Predict(context.Background(), testSignal(), 1000)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if res.Confidence != DefaultConfidence || res.Probabilities != nil {
		t.Fatalf("got confidence %v probabilities %v, want %v and none", res.Confidence, res.Probabilities, DefaultConfidence)
	}
}

func TestPredictPassesPipelineVector(t *testing.T) {
	p := features.NewPipeline(preprocess.DefaultConfig(), features.SelectAll(4))
	x := testSignal()

	want, err := p.Vector(x, 1000)
	if err != nil {
		t.Fatalf("Vector: %v", err)
	}

	var got features.Vector
	b := Bundle{
		Pipeline: p,
		Classifier: widthFunc{
			width: p.Width(),
			Func: func(_ context.Context, v features.Vector) (Prediction, error) {
				got = v
				return Prediction{Label: "metal"}, nil
			},
		},
	}

	if _, err := b.Predict(context.Background(), x, 1000); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestPredictErrors(t *testing.T) {
	boom := errors.New("boom")
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name   string
		bundle Bundle
		ctx    context.Context
		x      []float64
		want   error
	}{
		{
			name:   "no classifier",
			bundle: Bundle{Pipeline: features.DefaultPipeline()},
			want:   ErrNoClassifier,
		},
		{
			name: "width mismatch",
			bundle: Bundle{
				Pipeline:   features.NewPipeline(preprocess.DefaultConfig(), features.SelectAll(3)),
				Classifier: widthFunc{Func: constant(Prediction{}), width: 3},
			},
			want: ErrConfigurationMismatch,
		},
		{
			name: "class count mismatch",
			bundle: Bundle{
				Pipeline:   features.DefaultPipeline(),
				Classes:    []string{"a"},
				Classifier: constant(Prediction{Probabilities: []float64{0.5, 0.5}}),
			},
			want: ErrConfigurationMismatch,
		},
		{
			name: "unsupported version",
			bundle: Bundle{
				Pipeline:   features.Pipeline{Version: 9},
				Classifier: constant(Prediction{}),
			},
			want: features.ErrUnsupportedVersion,
		},
		{
			name: "invalid input",
			bundle: Bundle{
				Pipeline:   features.DefaultPipeline(),
				Classifier: constant(Prediction{}),
			},
			x:    []float64{},
			want: features.ErrInvalidInput,
		},
		{
			name: "classifier failure",
			bundle: Bundle{
				Pipeline: features.DefaultPipeline(),
				Classifier: Func(func(context.Context, features.Vector) (Prediction, error) {
					return Prediction{}, boom
				}),
			},
			want: boom,
		},
		{
			name: "canceled",
			bundle: Bundle{
				Pipeline:   features.DefaultPipeline(),
				Classifier: constant(Prediction{}),
			},
			ctx:  canceled,
			want: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.ctx
			if ctx == nil {
				ctx = context.Background()
			}
			x := tt.x
			if x == nil {
				x = testSignal()
			}

			_, err := tt.bundle.Predict(ctx, x, 1000)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
