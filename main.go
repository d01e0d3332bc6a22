// main.go
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ViniZap4/nurse-notes/config"
	"github.com/ViniZap4/nurse-notes/logging"
)

const version = "0.1.0"

type app struct {
	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var logLevel, logFormat string

	root := &cobra.Command{
		Use:           "nurse-notes",
		Short:         "Sample nurse notes API and fetch client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = log
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (json, console)")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newFetchCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
