// Package ledger holds the authoritative in-memory bill collection and the
// pure derived views computed from it (budget selection, category
// aggregation, chart projection).
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/DevrajNITRKL/Billing-Management/internal/model"
)

// ErrDuplicateID indicates an Add with an ID already present in the ledger.
var ErrDuplicateID = errors.New("duplicate bill id")

// Snapshot is an immutable copy of ledger state. Derived views operate on
// snapshots so they never observe a half-applied mutation.
type Snapshot struct {
	SelectedCategory string
	Bills            []model.Bill
	MonthlyBudget    float64
}

// Store owns the ledger state. All mutation goes through its methods; reads
// take a Snapshot first. A single RWMutex serializes writers against
// concurrent readers.
type Store struct {
	selectedCategory string
	bills            []model.Bill
	monthlyBudget    float64
	mu               sync.RWMutex
}

// NewStore creates a store seeded with the given bills and budget.
// Duplicate IDs in the seed are rejected.
func NewStore(seed []model.Bill, monthlyBudget float64) (*Store, error) {
	s := &Store{
		bills:         make([]model.Bill, 0, len(seed)),
		monthlyBudget: monthlyBudget,
	}
	for _, b := range seed {
		if err := s.Add(b); err != nil {
			return nil, fmt.Errorf("seeding ledger: %w", err)
		}
	}
	return s, nil
}

// Add appends a bill to the ledger, preserving insertion order.
// An ID already present is rejected with ErrDuplicateID.
func (s *Store) Add(bill model.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bills {
		if b.ID == bill.ID {
			return fmt.Errorf("%w: %d", ErrDuplicateID, bill.ID)
		}
	}
	s.bills = append(s.bills, bill)
	return nil
}

// Edit replaces the whole record matching bill.ID at its current position.
// Editing an unknown ID is a no-op; the return value only reports whether a
// replacement happened.
func (s *Store) Edit(bill model.Bill) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bills {
		if b.ID == bill.ID {
			s.bills[i] = bill
			return true
		}
	}
	return false
}

// Remove filters out the bill with the matching ID. Removing an unknown ID
// is a no-op, which makes removal idempotent.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bills {
		if b.ID == id {
			s.bills = append(s.bills[:i], s.bills[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the bill with the given ID, if present.
func (s *Store) Get(id int64) (model.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bill{}, false
}

// SetSelectedCategory replaces the category filter. The empty string means
// "all categories". The filter need not match any bill's category; filtering
// then yields an empty result, not an error.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
}

// SetMonthlyBudget replaces the monthly budget. The store does not clamp;
// callers validate non-negativity before calling.
func (s *Store) SetMonthlyBudget(amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monthlyBudget = amount
}

// Snapshot copies the current ledger state for derived computations.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bills := make([]model.Bill, len(s.bills))
	copy(bills, s.bills)
	return Snapshot{
		Bills:            bills,
		MonthlyBudget:    s.monthlyBudget,
		SelectedCategory: s.selectedCategory,
	}
}
