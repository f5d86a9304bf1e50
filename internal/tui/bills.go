// Package tui provides an interactive terminal browser for the bill ledger.
package tui

import (
	"fmt"

	"github.com/DevrajNITRKL/Billing-Management/internal/cli"
	"github.com/DevrajNITRKL/Billing-Management/internal/common"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the bubbletea model for the ledger browser. Derived views
// (payable set, filtered list, totals) are recomputed from a fresh snapshot
// on every state change; nothing is cached.
type Model struct {
	err        error
	store      *ledger.Store
	filtered   []int64
	categories []string
	table      table.Model
	filterIdx  int
	width      int
	height     int
}

// New creates a ledger browser over the given store.
func New(store *ledger.Store) Model {
	columns := []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Description", Width: 24},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 12},
		{Title: "Due", Width: 12},
		{Title: "Payable", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(cli.PrimaryColor)
	t.SetStyles(s)

	m := Model{
		store:  store,
		table:  t,
		width:  100,
		height: 24,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "f":
			// Cycle the category filter: all -> each present category -> all.
			m.filterIdx++
			if m.filterIdx > len(m.categories) {
				m.filterIdx = 0
			}
			if m.filterIdx == 0 {
				m.store.SetSelectedCategory("")
			} else {
				m.store.SetSelectedCategory(m.categories[m.filterIdx-1])
			}
			m.refresh()

		case "d", "x":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.filtered) {
				m.store.Remove(m.filtered[cursor])
				m.refresh()
			}

		case "r":
			m.refresh()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(1, m.height-6))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.height < 10 {
		return "Terminal too small"
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.table.View(),
		footer,
	)
}

// refresh recomputes every derived view from a fresh snapshot and rebuilds
// the table rows.
func (m *Model) refresh() {
	m.err = nil

	snap := m.store.Snapshot()
	m.categories = ledger.Categories(snap)
	if m.filterIdx > len(m.categories) {
		m.filterIdx = 0
	}

	bills := ledger.FilteredBills(snap)
	payable, err := ledger.OptimalBillSet(snap)
	if err != nil {
		// Keep the browser up on degraded data; the footer reports it.
		common.LogError(err, "payable selection unavailable", common.Fields{"bills": len(snap.Bills)})
		m.err = err
		payable = map[int64]bool{}
	}

	rows := make([]table.Row, 0, len(bills))
	m.filtered = m.filtered[:0]
	for _, b := range bills {
		m.filtered = append(m.filtered, b.ID)

		amountText := b.Amount
		if amount, err := b.ParsedAmount(); err == nil {
			amountText = fmt.Sprintf("₹%.2f", amount)
		}

		status := ""
		if payable[b.ID] {
			status = cli.PayableStyle.Render("✓")
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", b.ID),
			b.Description,
			b.Category,
			amountText,
			b.Date,
			status,
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m Model) renderHeader() string {
	snap := m.store.Snapshot()

	title := cli.TitleStyle.Render("Bills")
	status := fmt.Sprintf("%d bills | budget ₹%.2f", len(m.filtered), snap.MonthlyBudget)
	if snap.SelectedCategory != "" {
		status += fmt.Sprintf(" | filter: %s", snap.SelectedCategory)
	}
	if bills := ledger.FilteredBills(snap); len(bills) > 0 {
		if total, err := ledger.Total(bills); err == nil {
			status += fmt.Sprintf(" | total ₹%.2f", total)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, cli.SubtleStyle.Render(status))
}

func (m Model) renderFooter() string {
	if m.err != nil {
		return cli.ErrorStyle.Render(fmt.Sprintf("selection unavailable: %v", m.err))
	}
	return cli.SubtleStyle.Render("[↑↓] Navigate  [f] Cycle filter  [d] Delete  [q] Quit")
}
