package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-tap/vibration/classify"
	"github.com/spf13/cobra"
)

func newLayoutCommand(a *app) *cobra.Command {
	var descriptorOut string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the feature vector layout of the configured pipeline",
		Long: `Prints index and name of every feature the configured pipeline
produces. With --descriptor-out the pipeline is also saved as a versioned
descriptor to store next to a trained model.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			p, err := a.pipeline(cfg)
			if err != nil {
				return err
			}

			names := p.Names()
			rows := make([][]string, len(names))
			for i, n := range names {
				rows[i] = []string{strconv.Itoa(i), n}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Index", "Feature"}, rows, []columnAlignment{alignRight, alignLeft}))

			if descriptorOut == "" {
				return nil
			}
			f, err := os.Create(descriptorOut)
			if err != nil {
				return err
			}
			if err := classify.EncodeDescriptor(f, p); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.WithField("file", descriptorOut).Info("wrote pipeline descriptor")
			return nil
		},
	}

	addPipelineFlags(cmd)
	cmd.Flags().StringVar(&descriptorOut, "descriptor-out", "", "write the pipeline descriptor to this file")

	return cmd
}
