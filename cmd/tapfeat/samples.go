package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sample is the on-disk recording format.
type sample struct {
	Material     string    `json:"material"`
	Vibration    []float64 `json:"vibration"`
	SampleRateHz float64   `json:"sample_rate_hz"`

	// Simulation metadata, absent for real recordings.
	Source            string  `json:"source,omitempty"`
	Damping           float64 `json:"damping,omitempty"`
	DominantFrequency float64 `json:"dominant_frequency,omitempty"`
}

var errInvalidSample = errors.New("invalid sample")

func (s sample) validate() error {
	switch {
	case strings.TrimSpace(s.Material) == "":
		return fmt.Errorf("%w: material is missing", errInvalidSample)
	case len(s.Vibration) == 0:
		return fmt.Errorf("%w: vibration is empty", errInvalidSample)
	case s.SampleRateHz <= 0:
		return fmt.Errorf("%w: sample_rate_hz must be positive", errInvalidSample)
	}
	return nil
}

func readSample(path string) (sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sample{}, err
	}

	var s sample
	if err := json.Unmarshal(data, &s); err != nil {
		return sample{}, fmt.Errorf("%w: %v", errInvalidSample, err)
	}
	if err := s.validate(); err != nil {
		return sample{}, err
	}
	return s, nil
}

func writeSample(path string, s sample) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// collectInputs expands directories to the *.json files below them and
// returns the sorted, de-duplicated list of paths.
func collectInputs(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Clean(arg))
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
				add(filepath.Clean(path))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}
