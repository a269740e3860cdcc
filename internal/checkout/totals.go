package checkout

import "salon-admin/internal/model"

// Totals summarises a list of checkout items.
type Totals struct {
	Subtotal         float64
	AdjustedSubtotal float64
	Duration         int
}

// Sum adds up raw prices, adjusted prices and durations of items.
func Sum(items []model.CheckoutItem) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.Price
		t.AdjustedSubtotal += item.AdjustedPrice
		t.Duration += item.Duration
	}
	return t
}

// ScaleSavings shrinks the saving of every item (price minus adjusted price)
// by factor, keeping each item's share of the total saving. Constituent
// services of a package keep their adjusted prices.
func ScaleSavings(items []model.CheckoutItem, factor float64) []model.CheckoutItem {
	out := make([]model.CheckoutItem, len(items))
	for i, item := range items {
		item.AdjustedPrice = item.Price - (item.Price-item.AdjustedPrice)*factor
		out[i] = item
	}
	return out
}
