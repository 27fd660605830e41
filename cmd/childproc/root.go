// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuGH/childproc/internal/config"
	xglog "github.com/ManuGH/childproc/internal/log"
	"github.com/ManuGH/childproc/internal/validate"
	"github.com/ManuGH/childproc/internal/version"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "childproc",
		Short: "Spawn, wait for and kill child processes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel != "" {
				if _, err := validate.ParseLogLevel(opts.logLevel); err != nil {
					return fmt.Errorf("--log-level %q: %w", opts.logLevel, err)
				}
			}
			xglog.Configure(xglog.Config{
				Level:   opts.logLevel,
				Output:  cmd.ErrOrStderr(),
				Service: "childproc",
				Version: version.Version,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (overrides configuration)")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())

	root.SilenceUsage = true
	root.SilenceErrors = true

	return root
}

// loadConfig resolves the effective configuration and reconfigures logging
// with its level unless --log-level was given.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	cfg, err := config.NewLoader(o.configPath, version.Version).Load()
	if err != nil {
		return cfg, err
	}
	if o.logLevel == "" {
		xglog.Configure(xglog.Config{
			Level:   cfg.LogLevel,
			Output:  cmd.ErrOrStderr(),
			Service: "childproc",
			Version: cfg.Version,
		})
	}
	return cfg, nil
}
