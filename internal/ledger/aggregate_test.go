package ledger

import (
	"testing"

	"github.com/DevrajNITRKL/Billing-Management/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggregateFixture() Snapshot {
	return Snapshot{
		Bills: []model.Bill{
			{ID: 1, Category: "FoodNDining", Amount: "430"},
			{ID: 2, Category: "utility", Amount: "500"},
			{ID: 3, Category: "FoodNDining", Amount: "120.50"},
			{ID: 4, Category: "shopping", Amount: "2030"},
		},
		MonthlyBudget: 50000,
	}
}

func TestFilteredBills(t *testing.T) {
	snap := aggregateFixture()

	t.Run("no filter returns everything", func(t *testing.T) {
		assert.Len(t, FilteredBills(snap), 4)
	})

	t.Run("exact match", func(t *testing.T) {
		snap.SelectedCategory = "FoodNDining"
		filtered := FilteredBills(snap)
		require.Len(t, filtered, 2)
		assert.Equal(t, int64(1), filtered[0].ID)
		assert.Equal(t, int64(3), filtered[1].ID)
	})

	t.Run("case sensitive, no normalization", func(t *testing.T) {
		snap.SelectedCategory = "foodndining"
		assert.Empty(t, FilteredBills(snap))
	})

	t.Run("filter matching nothing is empty, not an error", func(t *testing.T) {
		snap.SelectedCategory = "Travel"
		assert.Empty(t, FilteredBills(snap))
	})
}

func TestTotal(t *testing.T) {
	snap := aggregateFixture()

	total, err := Total(snap.Bills)
	require.NoError(t, err)
	assert.InDelta(t, 3080.50, total, 1e-9)

	empty, err := Total(nil)
	require.NoError(t, err)
	assert.Zero(t, empty)

	_, err = Total([]model.Bill{{ID: 9, Amount: "9,99"}})
	require.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestTotalsPartitionByCategory(t *testing.T) {
	snap := aggregateFixture()

	all, err := Total(FilteredBills(snap))
	require.NoError(t, err)

	var sum float64
	for _, category := range Categories(snap) {
		scoped := snap
		scoped.SelectedCategory = category
		part, partErr := Total(FilteredBills(scoped))
		require.NoError(t, partErr)
		sum += part
	}

	assert.InDelta(t, all, sum, 1e-9)
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	snap := aggregateFixture()
	assert.Equal(t, []string{"FoodNDining", "utility", "shopping"}, Categories(snap))

	assert.Empty(t, Categories(Snapshot{}))
}
