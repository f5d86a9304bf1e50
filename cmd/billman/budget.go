package main

import (
	"fmt"
	"strconv"

	"github.com/DevrajNITRKL/Billing-Management/internal/cli"
	"github.com/DevrajNITRKL/Billing-Management/internal/common"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set the monthly budget",
	}

	cmd.AddCommand(showBudgetCmd())
	cmd.AddCommand(setBudgetCmd())

	return cmd
}

func showBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the monthly budget and how much of it the ledger consumes",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, _, err := initLedger()
			if err != nil {
				return err
			}

			snap := store.Snapshot()
			total, err := ledger.Total(snap.Bills)
			if err != nil {
				return fmt.Errorf("failed to total bills: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render(cli.BudgetIcon + " Monthly budget"))
			fmt.Printf("Budget:      ₹%.2f\n", snap.MonthlyBudget)
			fmt.Printf("All bills:   ₹%.2f\n", total)
			if total > snap.MonthlyBudget {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Over budget by ₹%.2f", total-snap.MonthlyBudget)))
			} else {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Headroom of ₹%.2f", snap.MonthlyBudget-total)))
			}
			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly budget",
		Long:  `Replace the monthly budget. The amount must be non-negative; the ledger engine itself does not clamp.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid budget amount: %w", err)
			}
			if amount < 0 {
				return common.NewUserError(fmt.Sprintf("budget %.2f is negative", amount), common.ErrNegativeBudget)
			}

			store, _, err := initLedger()
			if err != nil {
				return err
			}
			store.SetMonthlyBudget(amount)

			snap := store.Snapshot()
			payable, err := ledger.OptimalBillSet(snap)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Monthly budget set to ₹%.2f", amount)))
			fmt.Printf("%d of %d bills now fit within it\n", len(payable), len(snap.Bills))
			return nil
		},
	}
}
