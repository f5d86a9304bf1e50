// Package config provides configuration utilities for the application.
package config

import (
	"fmt"

	"github.com/DevrajNITRKL/Billing-Management/internal/common"
	"github.com/DevrajNITRKL/Billing-Management/internal/ledger"
	"github.com/DevrajNITRKL/Billing-Management/internal/model"
	"github.com/spf13/viper"
)

// Ledger holds the startup state of the bill ledger: the seed bill list,
// the default monthly budget and the fixed category enumeration.
type Ledger struct {
	Categories    []string
	Bills         []model.Bill
	MonthlyBudget float64
}

// DefaultLedger returns the built-in seed state used when no config file
// overrides it.
func DefaultLedger() Ledger {
	return Ledger{
		MonthlyBudget: 50000,
		Categories:    model.DefaultCategories,
		Bills: []model.Bill{
			{ID: 1, Description: "Dominoes", Category: "FoodNDining", Amount: "430", Date: "01-02-2020"},
			{ID: 2, Description: "Car wash", Category: "utility", Amount: "500", Date: "01-06-2020"},
			{ID: 3, Description: "Amazon", Category: "shopping", Amount: "2030", Date: "01-07-2020"},
			{ID: 4, Description: "House rent", Category: "Personal Care", Amount: "35000", Date: "01-03-2020"},
			{ID: 5, Description: "Tuition", Category: "education", Amount: "2200", Date: "01-12-2020"},
			{ID: 6, Description: "Laundry", Category: "Personal Care", Amount: "320", Date: "01-14-2020"},
		},
	}
}

// LoadLedgerConfig loads ledger seed state from Viper, falling back to the
// built-in defaults for any key the config file does not set. Keys:
//
//	budget.monthly      float
//	categories.allowed  list of strings
//	bills.seed          list of {id, description, category, amount, date}
func LoadLedgerConfig() (*Ledger, error) {
	cfg := DefaultLedger()

	if viper.IsSet("budget.monthly") {
		cfg.MonthlyBudget = viper.GetFloat64("budget.monthly")
	}
	if viper.IsSet("categories.allowed") {
		cfg.Categories = viper.GetStringSlice("categories.allowed")
	}
	if viper.IsSet("bills.seed") {
		var seed []model.Bill
		if err := viper.UnmarshalKey("bills.seed", &seed); err != nil {
			return nil, fmt.Errorf("%w: bills.seed: %v", common.ErrInvalidConfig, err)
		}
		cfg.Bills = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the seed state before it reaches the store.
func (c Ledger) Validate() error {
	if c.MonthlyBudget < 0 {
		return fmt.Errorf("%w: budget.monthly %.2f", common.ErrInvalidConfig, c.MonthlyBudget)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: categories.allowed is empty", common.ErrInvalidConfig)
	}
	seen := make(map[int64]bool, len(c.Bills))
	for _, b := range c.Bills {
		if seen[b.ID] {
			return fmt.Errorf("%w: bills.seed has duplicate id %d", common.ErrInvalidConfig, b.ID)
		}
		seen[b.ID] = true
		if err := b.Validate(c.Categories); err != nil {
			return fmt.Errorf("%w: bills.seed id %d: %v", common.ErrInvalidConfig, b.ID, err)
		}
	}
	return nil
}

// NewStore builds a ledger store from the seed state.
func (c Ledger) NewStore() (*ledger.Store, error) {
	return ledger.NewStore(c.Bills, c.MonthlyBudget)
}
