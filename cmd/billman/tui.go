package main

import (
	"github.com/DevrajNITRKL/Billing-Management/internal/tui"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the ledger interactively",
		Long:  `Open an interactive table of the bill ledger. Cycle the category filter, remove bills, and watch the payable set and totals recompute live.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initLedger()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), store)
		},
	}
}
