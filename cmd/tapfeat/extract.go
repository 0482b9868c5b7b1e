package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-tap/vibration/features"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type extractResult struct {
	path     string
	material string
	set      features.Set
	ok       bool
}

func newExtractCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file|dir>...",
		Short: "Extract feature vectors from sample files",
		Long: `Reads sample JSON files ({"material", "vibration", "sample_rate_hz"}),
directories are searched recursively for *.json. Invalid samples are skipped
with a warning. Output rows follow the sorted input paths.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args)
		},
	}

	addPipelineFlags(cmd)
	cmd.Flags().IntP("workers", "j", 0, "parallel workers (0 uses all CPUs)")
	cmd.Flags().StringP("format", "f", "csv", "output format (csv, json)")

	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	if cfg.Format != "csv" && cfg.Format != "json" {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	p, err := a.pipeline(cfg)
	if err != nil {
		return err
	}

	paths, err := collectInputs(args)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"files": len(paths), "workers": cfg.Workers}).Debug("extracting")

	results := make([]extractResult, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.extractFile(p, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var ok []extractResult
	for _, r := range results {
		if r.ok {
			ok = append(ok, r)
		}
	}
	if len(ok) == 0 {
		return errors.New("no valid samples")
	}
	a.log.WithFields(logrus.Fields{"extracted": len(ok), "skipped": len(results) - len(ok)}).Info("done")

	out := cmd.OutOrStdout()
	if cfg.Format == "json" {
		return writeJSONLines(out, ok)
	}
	return writeCSV(out, p.Names(), ok)
}

// extractFile never fails: problems are logged and the file is skipped.
func (a *app) extractFile(p features.Pipeline, path string) extractResult {
	log := a.log.WithField("file", path)

	s, err := readSample(path)
	if err != nil {
		log.WithError(err).Warn("skipping sample")
		return extractResult{path: path}
	}

	set, warnings, err := p.Run(s.Vibration, s.SampleRateHz)
	if err != nil {
		log.WithError(err).Warn("skipping sample")
		return extractResult{path: path}
	}
	for _, w := range warnings {
		log.WithField("code", w.Code).Warn(w.Message)
	}

	log.WithFields(logrus.Fields{
		"material":  s.Material,
		"peak_freq": set.Vector()[0],
	}).Debug("extracted")

	return extractResult{path: path, material: s.Material, set: set, ok: true}
}

func writeCSV(w io.Writer, names []string, results []extractResult) error {
	cw := csv.NewWriter(w)

	header := append([]string{"file", "material"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := make([]string, 0, len(header))
		row = append(row, r.path, r.material)
		for _, v := range r.set.Vector() {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type jsonRecord struct {
	File     string       `json:"file"`
	Material string       `json:"material"`
	Features features.Set `json:"features"`
}

func writeJSONLines(w io.Writer, results []extractResult) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(jsonRecord{File: r.path, Material: r.material, Features: r.set}); err != nil {
			return err
		}
	}
	return nil
}
