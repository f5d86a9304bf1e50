package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/DevrajNITRKL/Billing-Management/internal/cli"
	"github.com/DevrajNITRKL/Billing-Management/internal/config"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/DevrajNITRKL/Billing-Management/internal/model"
)

// initLedger builds the in-memory ledger store from configured seed state.
// The ledger is process-lifetime only; there is no persistence layer.
func initLedger() (*ledger.Store, *config.Ledger, error) {
	cfg, err := config.LoadLedgerConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ledger config: %w", err)
	}
	store, err := cfg.NewStore()
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// renderBillTable writes a bill table to w, highlighting payable rows.
func renderBillTable(w io.Writer, bills []model.Bill, payable map[int64]bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Description"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Date"))

	for _, b := range bills {
		amount, err := b.ParsedAmount()
		if err != nil {
			return err
		}
		id := fmt.Sprintf("%d", b.ID)
		amountText := fmt.Sprintf("₹%.2f", amount)
		desc, category, date := b.Description, b.Category, b.Date
		if payable[b.ID] {
			id = cli.PayableStyle.Render(id)
			desc = cli.PayableStyle.Render(desc)
			category = cli.PayableStyle.Render(category)
			amountText = cli.PayableStyle.Render(amountText)
			date = cli.PayableStyle.Render(date)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", id, desc, category, amountText, date)
	}

	return tw.Flush()
}
