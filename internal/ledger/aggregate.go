package ledger

import "github.com/DevrajNITRKL/Billing-Management/internal/model"

// FilteredBills returns the bills visible under the snapshot's category
// filter, in insertion order. An empty filter returns every bill; a filter
// matching nothing returns an empty slice. Matching is exact and
// case-sensitive, no normalization.
func FilteredBills(snap Snapshot) []model.Bill {
	if snap.SelectedCategory == "" {
		return snap.Bills
	}
	filtered := make([]model.Bill, 0, len(snap.Bills))
	for _, b := range snap.Bills {
		if b.Category == snap.SelectedCategory {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Total sums the parsed amounts of the given bills. An empty slice sums to
// zero; malformed amount text fails with model.ErrInvalidAmount.
func Total(bills []model.Bill) (float64, error) {
	var sum float64
	for _, b := range bills {
		amount, err := b.ParsedAmount()
		if err != nil {
			return 0, err
		}
		sum += amount
	}
	return sum, nil
}

// Categories returns the distinct categories actually present among current
// bills, in first-appearance order. This is what populates a filter
// selector; it is not the fixed configuration enumeration.
func Categories(snap Snapshot) []string {
	seen := make(map[string]bool, len(snap.Bills))
	var categories []string
	for _, b := range snap.Bills {
		if !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
	return categories
}
