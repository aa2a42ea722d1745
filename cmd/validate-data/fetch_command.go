package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/shane9b3/cycling/internal/config"
	"github.com/shane9b3/cycling/internal/loader"
	"github.com/shane9b3/cycling/internal/models"
	"github.com/shane9b3/cycling/internal/validate"
)

func newFetchCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a remote segment timeline, validate it, and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			fetchCfg := loader.FetchConfig{
				Retries:    cfg.Fetch.Retries,
				Timeout:    cfg.Fetch.Timeout(),
				RetryDelay: cfg.Fetch.RetryDelay(),
				UserAgent:  cfg.Fetch.UserAgent,
			}

			details, err := loader.FetchWorkoutDetails(cmd.Context(), args[0], fetchCfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSegments(details))
			fmt.Fprintf(cmd.OutOrStdout(), "%d segments, %.1f minutes total\n",
				len(details), details.TotalTime())

			res := validate.ValidateWorkoutDetails(details)
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "error:   %s\n", e)
			}
			for _, w := range res.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}

			if !res.Valid() {
				return fmt.Errorf("fetched timeline is invalid: %d errors", len(res.Errors))
			}
			return nil
		},
	}
	return cmd
}

func renderSegments(details models.WorkoutDetails) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Activity", "Time", "Resistance", "Cadence", "Elapsed"})
	for i, s := range details {
		tw.AppendRow(table.Row{i, s.Activity, s.Time, s.Resistance, s.Cadence, s.ElapsedTime})
	}
	return tw.Render()
}
