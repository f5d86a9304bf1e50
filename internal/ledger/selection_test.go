package ledger

import (
	"testing"

	"github.com/DevrajNITRKL/Billing-Management/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(budget float64, bills ...model.Bill) Snapshot {
	return Snapshot{Bills: bills, MonthlyBudget: budget}
}

func TestOptimalBillIDsGreedySkip(t *testing.T) {
	// 200 fits, then 200+300 exceeds 400: only bill 2 is selected even
	// though {1} or {2} both fit individually.
	snap := snapshotOf(400,
		model.Bill{ID: 1, Amount: "300", Date: "01-01-2024"},
		model.Bill{ID: 2, Amount: "200", Date: "02-01-2024"},
	)

	ids, err := OptimalBillIDs(snap)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}

func TestOptimalBillIDsPrefersSmallestFirst(t *testing.T) {
	snap := snapshotOf(21,
		model.Bill{ID: 1, Amount: "12"},
		model.Bill{ID: 2, Amount: "10"},
		model.Bill{ID: 3, Amount: "11"},
	)

	ids, err := OptimalBillIDs(snap)
	require.NoError(t, err)
	// 10 then 11 fill the budget; 12 no longer fits.
	assert.Equal(t, []int64{2, 3}, ids)
}

func TestOptimalBillIDsStableOnEqualAmounts(t *testing.T) {
	snap := snapshotOf(25,
		model.Bill{ID: 10, Amount: "10"},
		model.Bill{ID: 20, Amount: "10"},
		model.Bill{ID: 30, Amount: "10"},
	)

	ids, err := OptimalBillIDs(snap)
	require.NoError(t, err)
	// Stable sort keeps insertion order among ties, so the first two win.
	assert.Equal(t, []int64{10, 20}, ids)
}

func TestOptimalBillIDsSkippedBillStaysSkipped(t *testing.T) {
	// After 10 and 11 (sum 21), 12 is skipped; the running sum keeps the
	// skipped bill out and never resets, so nothing larger gets in either.
	snap := snapshotOf(21,
		model.Bill{ID: 1, Amount: "12"},
		model.Bill{ID: 2, Amount: "10"},
		model.Bill{ID: 3, Amount: "11"},
		model.Bill{ID: 4, Amount: "13"},
	)

	ids, err := OptimalBillIDs(snap)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
}

func TestOptimalBillIDsIgnoresCategoryFilter(t *testing.T) {
	snap := Snapshot{
		Bills: []model.Bill{
			{ID: 1, Category: "utility", Amount: "100"},
			{ID: 2, Category: "shopping", Amount: "50"},
		},
		MonthlyBudget:    200,
		SelectedCategory: "utility",
	}

	ids, err := OptimalBillIDs(snap)
	require.NoError(t, err)
	// Selection always considers every bill, filter or not.
	assert.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestOptimalBillIDsBudgetBound(t *testing.T) {
	budgets := []float64{0, 99, 430, 1000, 2500, 100000}
	bills := []model.Bill{
		{ID: 1, Amount: "430"},
		{ID: 2, Amount: "500"},
		{ID: 3, Amount: "2030"},
		{ID: 4, Amount: "99.99"},
		{ID: 5, Amount: "0"},
	}

	for _, budget := range budgets {
		snap := snapshotOf(budget, bills...)
		set, err := OptimalBillSet(snap)
		require.NoError(t, err)

		var spent float64
		for _, b := range bills {
			if set[b.ID] {
				amount, amtErr := b.ParsedAmount()
				require.NoError(t, amtErr)
				spent += amount
			}
		}
		assert.LessOrEqual(t, spent, budget, "budget %v exceeded", budget)
	}
}

func TestOptimalBillIDsZeroBudgetStillTakesFreeBills(t *testing.T) {
	snap := snapshotOf(0,
		model.Bill{ID: 1, Amount: "0"},
		model.Bill{ID: 2, Amount: "1"},
	)

	ids, err := OptimalBillIDs(snap)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestOptimalBillIDsEmptyLedger(t *testing.T) {
	ids, err := OptimalBillIDs(snapshotOf(1000))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestOptimalBillIDsMalformedAmountFailsClosed(t *testing.T) {
	snap := snapshotOf(1000,
		model.Bill{ID: 1, Amount: "100"},
		model.Bill{ID: 2, Amount: "oops"},
	)

	_, err := OptimalBillIDs(snap)
	require.ErrorIs(t, err, model.ErrInvalidAmount)
}
