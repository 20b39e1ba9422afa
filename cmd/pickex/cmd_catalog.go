package main

import (
	"github.com/felixgeelhaar/pickex/internal/report"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List chapter groups, chapters and exercise counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.Catalog(cmd.OutOrStdout(), a.catalog)
		},
	}
}
