// Package classify connects the feature pipeline to an externally trained
// material classifier.
//
// A [Bundle] pairs a classifier with the [features.Pipeline] it was trained
// under. Predict rebuilds the feature vector with exactly that pipeline, so a
// model is never fed a layout it was not trained on.
package classify
