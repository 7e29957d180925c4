package cartControllers

import (
	"github.com/shopspring/decimal"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// The cart mutation rules, separated from persistence so they hold for every
// call sequence: at most one entry per product id, every quantity >= 1.

// applyAdd merges item into items: an existing entry for the same product has
// the quantity summed onto it, otherwise the item is appended.
func applyAdd(items []models.CartItem, item models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// applyQuantity replaces the entry's quantity in place; zero or negative
// delegates to removal rather than storing a non-positive quantity.
func applyQuantity(items []models.CartItem, productID uint, quantity int) []models.CartItem {
	if quantity <= 0 {
		return applyRemove(items, productID)
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

func applyRemove(items []models.CartItem, productID uint) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// totals recomputes the derived values from scratch on every call; nothing is
// cached between mutations.
func totals(items []models.CartItem) (totalItems int, totalPrice decimal.Decimal) {
	totalPrice = decimal.Zero
	for _, it := range items {
		totalItems += it.Quantity
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		totalPrice = totalPrice.Add(line)
	}
	return totalItems, totalPrice
}
