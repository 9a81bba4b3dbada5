package services

import "github.com/tnsurya7/newtons-labs/internal/models"

type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	TotalAmount    float64
}

// ComputeTotals derives booking totals from the cart lines. Item prices are
// already post-discount, so DiscountAmount is reported for display only and is
// never subtracted again: TotalAmount equals Subtotal. No tax is levied yet.
func ComputeTotals(items []models.CartItem) Totals {

	var totals Totals

	for _, item := range items {
		totals.Subtotal += item.Price

		if item.OriginalPrice != nil && *item.OriginalPrice > item.Price {
			totals.DiscountAmount += *item.OriginalPrice - item.Price
		}
	}

	totals.TaxAmount = 0
	totals.TotalAmount = totals.Subtotal

	return totals
}
