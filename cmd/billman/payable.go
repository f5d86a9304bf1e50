package main

import (
	"fmt"
	"os"

	"github.com/DevrajNITRKL/Billing-Management/internal/cli"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/DevrajNITRKL/Billing-Management/internal/model"
	"github.com/spf13/cobra"
)

func payableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payable",
		Short: "Show which bills the monthly budget can cover",
		Long: `Compute the set of bills payable without exceeding the monthly budget.

The selection is greedy, smallest amount first: it maximizes how many bills
get paid, not how much of the budget gets spent. The category filter is
ignored; every bill is considered.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, _, err := initLedger()
			if err != nil {
				return err
			}

			snap := store.Snapshot()
			ids, err := ledger.OptimalBillIDs(snap)
			if err != nil {
				return fmt.Errorf("failed to compute payable bills: %w", err)
			}

			if len(ids) == 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No bills fit within the ₹%.2f budget", snap.MonthlyBudget)))
				return nil
			}

			selected := make([]model.Bill, 0, len(ids))
			payable := make(map[int64]bool, len(ids))
			for _, id := range ids {
				payable[id] = true
				if b, ok := store.Get(id); ok {
					selected = append(selected, b)
				}
			}
			spent, err := ledger.Total(selected)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Payable this month"))
			if err := renderBillTable(os.Stdout, selected, payable); err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("%s ₹%.2f of ₹%.2f (₹%.2f left over)\n",
				cli.BoldStyle.Render("Spend:"), spent, snap.MonthlyBudget, snap.MonthlyBudget-spent)
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d of %d bills selected, cheapest first", len(selected), len(snap.Bills))))
			return nil
		},
	}
}
