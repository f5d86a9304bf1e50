package main

import (
	"fmt"
	"strings"

	"github.com/DevrajNITRKL/Billing-Management/internal/cli"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/spf13/cobra"
)

const chartBarWidth = 40

func chartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Chart bill amounts over time",
		Long: `Render the billing cycle as a bar per bill, ordered by due date.

Bills with unparseable dates fall back to today and sort accordingly.
No bucketing: two bills in the same month stay separate points.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, _, err := initLedger()
			if err != nil {
				return err
			}

			points, err := ledger.Series(store.Snapshot())
			if err != nil {
				return fmt.Errorf("failed to project chart series: %w", err)
			}
			if len(points) == 0 {
				fmt.Println(cli.FormatInfo("No bills to chart."))
				return nil
			}

			var maxAmount float64
			for _, p := range points {
				if p.Amount > maxAmount {
					maxAmount = p.Amount
				}
			}

			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Monthly Billing Cycle"))
			for _, p := range points {
				width := 0
				if maxAmount > 0 {
					width = int(p.Amount / maxAmount * chartBarWidth)
				}
				if width < 1 && p.Amount > 0 {
					width = 1
				}
				// Negative amounts (refunds, credits) get an empty bar.
				if width < 0 {
					width = 0
				}
				bar := cli.BarStyle.Render(strings.Repeat("█", width))
				fmt.Printf("%-12s %s ₹%.2f\n", p.Label, bar, p.Amount)
			}
			return nil
		},
	}
}
