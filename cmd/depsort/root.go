package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/depsort/logger"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	noColor   bool
}

func newRootCmd() *cobra.Command {
	v, cfgErr := newViper()
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "depsort",
		Short: "Order dependency graphs and storage action plans",
		Long: `depsort computes a dependency-respecting order for the items of a graph
file, or for the create, destroy and resize actions of a storage plan.
Circular dependencies are reported as errors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			l, err := o.logger(cmd)
			if err != nil {
				return err
			}
			logger.SetDefault(l)
			if path := v.ConfigFileUsed(); path != "" {
				l.Debug("using config file", "path", path)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithContext(ctx, l))

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&o.logLevel, "log-level", "l", v.GetString(vLogLevel), "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&o.logFormat, "log-format", v.GetString(vLogFormat), "log format: console, json, dev or none")
	cmd.PersistentFlags().BoolVar(&o.noColor, "no-color", v.GetBool(vNoColor), "disable colored log output")

	cmd.AddCommand(
		newSortCmd(),
		newPlanCmd(),
		newGraphCmd(),
		newVersionCmd(),
	)

	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(o.logFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(logger.Config{
		Level:       level,
		Format:      format,
		Destination: cmd.ErrOrStderr(),
		Color:       !o.noColor,
	})
}
