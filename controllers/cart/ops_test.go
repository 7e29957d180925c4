package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

func item(productID uint, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: productID, Price: price, Quantity: qty}
}

func TestApplyAddMergesQuantities(t *testing.T) {
	items := applyAdd(nil, item(5, 15, 2))
	items = applyAdd(items, item(5, 15, 3))

	require.Len(t, items, 1)
	require.Equal(t, uint(5), items[0].ProductID)
	require.Equal(t, 5, items[0].Quantity)
}

func TestApplyAddAppendsNewProduct(t *testing.T) {
	items := applyAdd(nil, item(1, 12, 1))
	items = applyAdd(items, item(2, 15, 2))

	require.Len(t, items, 2)
	require.Equal(t, uint(2), items[1].ProductID)
}

func TestApplyQuantityReplacesInPlace(t *testing.T) {
	items := applyAdd(nil, item(1, 12, 1))
	items = applyQuantity(items, 1, 7)

	require.Len(t, items, 1)
	require.Equal(t, 7, items[0].Quantity)
}

func TestApplyQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		items := applyAdd(nil, item(1, 12, 2))
		items = applyAdd(items, item(2, 15, 1))

		updated := applyQuantity(items, 1, qty)
		require.Equal(t, applyRemove(items, 1), updated, "quantity %d must equal removal", qty)
		require.Len(t, updated, 1)
		require.Equal(t, uint(2), updated[0].ProductID)
	}
}

func TestApplyRemoveUnknownProductIsNoop(t *testing.T) {
	items := applyAdd(nil, item(1, 12, 2))
	require.Len(t, applyRemove(items, 99), 1)
}

// Any sequence of mutations keeps at most one entry per product id with every
// quantity >= 1.
func TestInvariantsHoldAcrossSequences(t *testing.T) {
	var items []models.CartItem
	ops := []func([]models.CartItem) []models.CartItem{
		func(s []models.CartItem) []models.CartItem { return applyAdd(s, item(1, 10, 2)) },
		func(s []models.CartItem) []models.CartItem { return applyAdd(s, item(2, 20, 1)) },
		func(s []models.CartItem) []models.CartItem { return applyAdd(s, item(1, 10, 3)) },
		func(s []models.CartItem) []models.CartItem { return applyQuantity(s, 2, 0) },
		func(s []models.CartItem) []models.CartItem { return applyAdd(s, item(3, 5, 4)) },
		func(s []models.CartItem) []models.CartItem { return applyQuantity(s, 3, -1) },
		func(s []models.CartItem) []models.CartItem { return applyRemove(s, 99) },
		func(s []models.CartItem) []models.CartItem { return applyQuantity(s, 1, 1) },
	}

	for i, op := range ops {
		items = op(items)
		seen := map[uint]bool{}
		for _, it := range items {
			require.False(t, seen[it.ProductID], "op %d: duplicate product %d", i, it.ProductID)
			seen[it.ProductID] = true
			require.GreaterOrEqual(t, it.Quantity, 1, "op %d: product %d quantity", i, it.ProductID)
		}
	}

	require.Len(t, items, 1)
	require.Equal(t, uint(1), items[0].ProductID)
	require.Equal(t, 1, items[0].Quantity)
}

func TestTotalsRecomputedFromContents(t *testing.T) {
	items := []models.CartItem{item(1, 15, 2), item(2, 20, 1)}

	count, price := totals(items)
	require.Equal(t, 3, count)
	require.Equal(t, "50", price.String())

	// Totals follow every mutation with no caching in between.
	items = applyQuantity(items, 1, 1)
	count, price = totals(items)
	require.Equal(t, 2, count)
	require.Equal(t, "35", price.String())

	count, price = totals(nil)
	require.Equal(t, 0, count)
	require.True(t, price.IsZero())
}
