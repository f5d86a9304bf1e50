// Package model defines the core domain types for the bill ledger.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount indicates bill amount text that does not parse to a
// finite number. Derived computations fail closed on it rather than letting
// a NaN corrupt sorts and sums.
var ErrInvalidAmount = errors.New("invalid amount")

// DefaultCategories is the fixed category enumeration offered to users.
// It is configuration, not user-extensible; the set of categories actually
// present in a ledger may be smaller.
var DefaultCategories = []string{
	"FoodNDining",
	"utility",
	"shopping",
	"education",
	"Personal Care",
	"Travel",
}

// Bill represents one recurring payment tracked against the monthly budget.
//
// Amount is stored as text and parsed on demand; Date is MM-DD-YYYY text
// validated only when parsed. IDs are caller-supplied freshness tokens
// (conventionally Unix milliseconds) and must be unique within a ledger.
type Bill struct {
	Description string
	Category    string
	Amount      string
	Date        string
	ID          int64
}

// ParseAmount parses monetary amount text into a float64.
// Malformed text, NaN and infinities are rejected with ErrInvalidAmount.
func ParseAmount(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return v, nil
}

// ParsedAmount parses the bill's amount text.
func (b Bill) ParsedAmount() (float64, error) {
	v, err := ParseAmount(b.Amount)
	if err != nil {
		return 0, fmt.Errorf("bill %d: %w", b.ID, err)
	}
	return v, nil
}

// Validate checks the fields a bill must carry before entering the ledger.
// The date is deliberately not validated here; it is checked at parse time
// with a documented fallback.
func (b Bill) Validate(allowedCategories []string) error {
	if strings.TrimSpace(b.Description) == "" {
		return errors.New("description is required")
	}
	if b.Category == "" {
		return errors.New("category is required")
	}
	if len(allowedCategories) > 0 && !contains(allowedCategories, b.Category) {
		return fmt.Errorf("unknown category %q (allowed: %s)", b.Category, strings.Join(allowedCategories, ", "))
	}
	if _, err := ParseAmount(b.Amount); err != nil {
		return err
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
