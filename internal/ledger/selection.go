package ledger

import (
	"sort"

	"github.com/DevrajNITRKL/Billing-Management/internal/model"
)

// OptimalBillIDs computes which bills can be paid this month without
// exceeding the budget, using a greedy smallest-amount-first walk.
//
// The whole ledger is considered regardless of the active category filter.
// A stable sort keeps insertion order among equal amounts. Once a bill is
// skipped it is never revisited, so the heuristic maximizes the count of
// affordable bills, not the total spent; it can leave budget unused when a
// different subset would fit better. That is the documented behavior, not a
// bug to fix: an exact knapsack would change which bills get highlighted.
//
// Any bill with malformed amount text fails the whole computation with
// model.ErrInvalidAmount.
func OptimalBillIDs(snap Snapshot) ([]int64, error) {
	type priced struct {
		bill   model.Bill
		amount float64
	}

	sorted := make([]priced, 0, len(snap.Bills))
	for _, b := range snap.Bills {
		amount, err := b.ParsedAmount()
		if err != nil {
			return nil, err
		}
		sorted = append(sorted, priced{bill: b, amount: amount})
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].amount < sorted[j].amount
	})

	var ids []int64
	var running float64
	for _, p := range sorted {
		if running+p.amount <= snap.MonthlyBudget {
			ids = append(ids, p.bill.ID)
			running += p.amount
		}
	}
	return ids, nil
}

// OptimalBillSet is OptimalBillIDs as a membership set, convenient for
// row highlighting.
func OptimalBillSet(snap Snapshot) (map[int64]bool, error) {
	ids, err := OptimalBillIDs(snap)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
