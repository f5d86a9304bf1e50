package tui

import (
	"context"
	"fmt"

	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive ledger browser and blocks until the user quits
// or the context is canceled.
func Run(ctx context.Context, store *ledger.Store) error {
	if store == nil {
		return fmt.Errorf("ledger store is required")
	}

	p := tea.NewProgram(New(store), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
