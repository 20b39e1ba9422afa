package main

import (
	"github.com/felixgeelhaar/pickex/internal/report"
	"github.com/spf13/cobra"
)

func newProgressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show solved exercises per chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			progress, err := a.picker().Progress()
			if err != nil {
				return err
			}
			return report.Progress(cmd.OutOrStdout(), progress)
		},
	}
}
