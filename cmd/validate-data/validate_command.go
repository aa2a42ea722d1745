package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shane9b3/cycling/internal/config"
	"github.com/shane9b3/cycling/internal/history"
	"github.com/shane9b3/cycling/internal/report"
)

func newValidateCommand(configFlag *string) *cobra.Command {
	var (
		noHistory   bool
		detailPaths []string
	)

	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Validate workout data files and print a report",
		Long: "Validates the configured workouts and videos files plus any segment " +
			"timelines given with --details. Explicit paths override the configured " +
			"file set; each path's kind is inferred from its name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			runner := report.NewRunner(commandLogger(cmd))

			var run report.RunSummary
			if len(args) > 0 {
				run = runner.RunPaths(args)
			} else {
				run = runner.Run(cfg.Data.Workouts, cfg.Data.Videos, detailPaths)
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Render(run))

			if !noHistory {
				if err := recordRun(cmd, cfg.History.Path, run); err != nil {
					return err
				}
			}

			if !run.Valid() {
				return fmt.Errorf("validation failed: %d of %d files invalid",
					run.InvalidFiles(), len(run.Files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	cmd.Flags().StringArrayVar(&detailPaths, "details", nil, "Workout-details timeline file to check (repeatable)")

	return cmd
}

func recordRun(cmd *cobra.Command, path string, run report.RunSummary) error {
	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if err := store.RecordRun(cmd.Context(), run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
