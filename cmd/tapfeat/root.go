package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "TAPFEAT"

// app carries state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:           "tapfeat",
		Short:         "Vibration tap feature extraction",
		Long:          "Turns tap recordings into the fixed-layout feature vectors a material classifier is trained on.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newExtractCommand(a),
		newSimulateCommand(a),
		newLayoutCommand(a),
	)

	return root
}

// initialize reads the config file, wires environment variables and sets up
// logging. It runs after flags are parsed.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.bindCommandFlags(cmd); err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log.SetLevel(level)

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("using config file")
	}
	return nil
}
