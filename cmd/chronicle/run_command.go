package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/logging"
	"chronicle/internal/report"
	"chronicle/internal/runner"
	"chronicle/internal/runstore"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Execute the full cleaning pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			store, err := runstore.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run database: %w", err)
			}
			defer store.Close()

			r, err := runner.New(cfg, store, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			result, err := r.Execute(cmd.Context())
			if err != nil {
				if result != nil && result.Run != nil {
					fmt.Fprintln(out, statusLine(false, report.FailureLine(result.Run), colorize))
				}
				return err
			}

			fmt.Fprintln(out, report.Summary(result.Stats))
			fmt.Fprintln(out, statusLine(true,
				fmt.Sprintf("wrote %d cleaned rows to %s", result.Run.CleanedRows, result.Run.OutputPath),
				colorize))
			return nil
		},
	}
}
