package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-tap/dsp/window"
	"github.com/cwbudde/algo-tap/vibration/classify"
	"github.com/cwbudde/algo-tap/vibration/features"
	"github.com/cwbudde/algo-tap/vibration/preprocess"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flags to viper keys. Flags are bound when the
// command that owns them runs, so commands sharing a flag name do not
// overwrite each other's binding.
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"descriptor":    "descriptor",
	"detrend":       "preprocess.detrend",
	"window":        "preprocess.window",
	"resample-rate": "preprocess.resample_rate_hz",
	"target-length": "preprocess.target_length",
	"align":         "preprocess.length_align",
	"extra":         "features.extra",
	"top-k":         "features.top_k_peaks",
	"workers":       "workers",
	"format":        "format",
}

// cliConfig is the merged flag, environment and config file view.
type cliConfig struct {
	LogLevel   string `mapstructure:"log_level"`
	Descriptor string `mapstructure:"descriptor"`
	Workers    int    `mapstructure:"workers"`
	Format     string `mapstructure:"format"`

	Preprocess struct {
		Detrend        bool    `mapstructure:"detrend"`
		Window         string  `mapstructure:"window"`
		ResampleRateHz float64 `mapstructure:"resample_rate_hz"`
		TargetLength   int     `mapstructure:"target_length"`
		LengthAlign    string  `mapstructure:"length_align"`
	} `mapstructure:"preprocess"`

	Features struct {
		// Extra is a bool, a list of names or a comma-separated string.
		Extra     any `mapstructure:"extra"`
		TopKPeaks int `mapstructure:"top_k_peaks"`
	} `mapstructure:"features"`
}

func addPipelineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("descriptor", "", "pipeline descriptor file (overrides the pipeline flags)")
	f.Bool("detrend", true, "subtract the mean before analysis")
	f.String("window", window.TypeHann.String(), "window applied before resampling (hann, none)")
	f.Float64("resample-rate", 0, "resample to this rate in Hz (0 keeps the capture rate)")
	f.Int("target-length", 0, "crop or zero-pad to this many samples (0 keeps the length)")
	f.String("align", preprocess.AlignCenter.String(), "crop/pad alignment (left, center, right)")
	f.StringSlice("extra", nil, "optional features: all, none or a list of "+features.AllExtras.String())
	f.Int("top-k", features.DefaultTopKPeaks, "number of dominant frequencies reported by top_peaks")
}

// bindCommandFlags binds every flag of the running command that has a
// viper key.
func (a *app) bindCommandFlags(cmd *cobra.Command) error {
	var lastErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			if err := a.v.BindPFlag(key, f); err != nil {
				lastErr = err
			}
		}
	})
	return lastErr
}

func (a *app) config() (cliConfig, error) {
	var cfg cliConfig
	if err := a.v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}

// pipeline returns the descriptor named by the config or, without one, the
// pipeline described by the individual settings.
func (a *app) pipeline(cfg cliConfig) (features.Pipeline, error) {
	if cfg.Descriptor != "" {
		f, err := os.Open(cfg.Descriptor)
		if err != nil {
			return features.Pipeline{}, err
		}
		defer f.Close()

		p, err := classify.DecodeDescriptor(f)
		if err != nil {
			return features.Pipeline{}, fmt.Errorf("%s: %w", cfg.Descriptor, err)
		}
		a.log.WithField("file", cfg.Descriptor).Debug("loaded pipeline descriptor")
		return p, nil
	}

	win, known := window.ParseType(cfg.Preprocess.Window)
	if !known {
		a.log.WithField("window", cfg.Preprocess.Window).Warn("unknown window, analysing without one")
	}

	pre := preprocess.Config{
		Detrend:        cfg.Preprocess.Detrend,
		Window:         win,
		ResampleRateHz: cfg.Preprocess.ResampleRateHz,
		TargetLength:   cfg.Preprocess.TargetLength,
		Align:          preprocess.ParseAlign(cfg.Preprocess.LengthAlign),
	}

	sel, unknown, err := selectionFrom(cfg.Features.Extra, cfg.Features.TopKPeaks)
	if err != nil {
		return features.Pipeline{}, err
	}
	for _, name := range unknown {
		a.log.WithField("extra", name).Warn("ignoring unknown feature")
	}

	return features.NewPipeline(pre, sel), nil
}

// selectionFrom interprets the extra setting. It also returns the names it
// did not recognise.
func selectionFrom(raw any, k int) (features.Selection, []string, error) {
	switch t := raw.(type) {
	case nil:
		return features.Selection{TopKPeaks: k}, nil, nil
	case bool:
		if t {
			return features.SelectAll(k), nil, nil
		}
		return features.Selection{TopKPeaks: k}, nil, nil
	case string:
		sel, unknown := selectNames(k, strings.Split(t, ","))
		return sel, unknown, nil
	case []string:
		sel, unknown := selectNames(k, t)
		return sel, unknown, nil
	case []any:
		names := make([]string, 0, len(t))
		for _, v := range t {
			s, ok := v.(string)
			if !ok {
				return features.Selection{}, nil, fmt.Errorf("features.extra: list entries must be names, got %T", v)
			}
			names = append(names, s)
		}
		sel, unknown := selectNames(k, names)
		return sel, unknown, nil
	default:
		return features.Selection{}, nil, fmt.Errorf("features.extra: want a boolean or a list of names, got %T", raw)
	}
}

func selectNames(k int, names []string) (features.Selection, []string) {
	clean := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			clean = append(clean, n)
		}
	}

	if len(clean) == 1 {
		switch clean[0] {
		case "all", "true":
			return features.SelectAll(k), nil
		case "none", "false":
			return features.Selection{TopKPeaks: k}, nil
		}
	}

	var unknown []string
	for _, n := range clean {
		if _, ok := features.ParseExtra(n); !ok {
			unknown = append(unknown, n)
		}
	}
	return features.SelectExtras(k, clean...), unknown
}
