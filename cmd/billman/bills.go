package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DevrajNITRKL/Billing-Management/internal/cli"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/DevrajNITRKL/Billing-Management/internal/model"
	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage the bill ledger",
		Long:  `List, add, edit, and remove the recurring bills tracked against the monthly budget.`,
	}

	cmd.AddCommand(listBillsCmd())
	cmd.AddCommand(addBillCmd())
	cmd.AddCommand(editBillCmd())
	cmd.AddCommand(removeBillCmd())
	cmd.AddCommand(listBillCategoriesCmd())

	return cmd
}

func listBillsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Long:  `Display the bill ledger as a table, optionally filtered by category. Bills the monthly budget can cover are highlighted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, _, err := initLedger()
			if err != nil {
				return err
			}
			store.SetSelectedCategory(category)

			snap := store.Snapshot()
			filtered := ledger.FilteredBills(snap)
			if len(filtered) == 0 {
				fmt.Println(cli.FormatInfo("No bills found. Use 'billman bills add' to create one."))
				return nil
			}

			payable, err := ledger.OptimalBillSet(snap)
			if err != nil {
				return fmt.Errorf("failed to compute payable bills: %w", err)
			}
			total, err := ledger.Total(filtered)
			if err != nil {
				return fmt.Errorf("failed to total bills: %w", err)
			}

			if err := renderBillTable(os.Stdout, filtered, payable); err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("%s ₹%.2f\n", cli.BoldStyle.Render("Total:"), total)
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Monthly budget: ₹%.2f (highlighted rows fit within it)", snap.MonthlyBudget)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show bills in this category (exact match)")

	return cmd
}

func addBillCmd() *cobra.Command {
	var (
		id          int64
		description string
		category    string
		amount      string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new bill",
		Long:  `Append a bill to the ledger. The ID defaults to a Unix-millisecond timestamp; supplying one that already exists is rejected.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := initLedger()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("id") {
				id = time.Now().UnixMilli()
			}
			if date == "" {
				date = time.Now().Format("01-02-2006")
			}

			bill := model.Bill{
				ID:          id,
				Description: description,
				Category:    category,
				Amount:      amount,
				Date:        date,
			}
			if err := bill.Validate(cfg.Categories); err != nil {
				return fmt.Errorf("invalid bill: %w", err)
			}
			if err := store.Add(bill); err != nil {
				return fmt.Errorf("failed to add bill: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added bill %q (ID: %d)", bill.Description, bill.ID)))
			snap := store.Snapshot()
			payable, err := ledger.OptimalBillSet(snap)
			if err != nil {
				return err
			}
			return renderBillTable(os.Stdout, snap.Bills, payable)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Bill ID (defaults to a Unix-millisecond timestamp)")
	cmd.Flags().StringVar(&description, "description", "", "Bill description")
	cmd.Flags().StringVar(&category, "category", "", "Bill category")
	cmd.Flags().StringVar(&amount, "amount", "", "Bill amount")
	cmd.Flags().StringVar(&date, "date", "", "Due date as MM-DD-YYYY (defaults to today)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func editBillCmd() *cobra.Command {
	var (
		description string
		category    string
		amount      string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a bill",
		Long:  `Replace fields of the bill with the given ID, keeping its position in the ledger. Editing an unknown ID is a no-op.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bill ID: %w", err)
			}

			if description == "" && category == "" && amount == "" && date == "" {
				return fmt.Errorf("must specify --description, --category, --amount, or --date to update")
			}

			store, cfg, err := initLedger()
			if err != nil {
				return err
			}

			current, ok := store.Get(id)
			if !ok {
				// Unknown IDs are a deliberate no-op, not an error.
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No bill with ID %d; nothing changed", id)))
				return nil
			}

			// Use current values if not specified
			bill := current
			if description != "" {
				bill.Description = description
			}
			if category != "" {
				bill.Category = category
			}
			if amount != "" {
				bill.Amount = amount
			}
			if date != "" {
				bill.Date = date
			}
			if err := bill.Validate(cfg.Categories); err != nil {
				return fmt.Errorf("invalid bill: %w", err)
			}

			store.Edit(bill)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated bill %d", id)))

			snap := store.Snapshot()
			payable, err := ledger.OptimalBillSet(snap)
			if err != nil {
				return err
			}
			return renderBillTable(os.Stdout, snap.Bills, payable)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVar(&date, "date", "", "New due date as MM-DD-YYYY")

	return cmd
}

func removeBillCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a bill",
		Long:  `Remove the bill with the given ID from the ledger. Removing an unknown ID is a no-op.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bill ID: %w", err)
			}

			store, _, err := initLedger()
			if err != nil {
				return err
			}

			// Confirm removal
			if !force {
				fmt.Printf("Are you sure you want to remove bill %d? (y/N): ", id)
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Removal cancelled.")
					return nil
				}
			}

			if store.Remove(id) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed bill %d", id)))
			} else {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No bill with ID %d; nothing changed", id)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func listBillCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in use",
		Long:  `Display the distinct categories present among current bills, in first-appearance order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, _, err := initLedger()
			if err != nil {
				return err
			}

			categories := ledger.Categories(store.Snapshot())
			if len(categories) == 0 {
				fmt.Println(cli.FormatInfo("No bills, so no categories in use."))
				return nil
			}
			for _, c := range categories {
				fmt.Println(c)
			}
			return nil
		},
	}
}
