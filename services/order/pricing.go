package order

import "bizly/models"

// ComputeTotals derives the order money fields from its lines and an optional
// discount. Subtotal is the plain line sum; the discount never drives the
// total below zero. Pure function so the math is testable without storage.
func ComputeTotals(items []models.OrderItem, discount *models.Discount) (subtotal, off, total int64) {
	for _, item := range items {
		subtotal += int64(item.Quantity) * item.UnitPriceCents
	}

	if discount != nil {
		switch discount.Kind {
		case models.DiscountPercent:
			off = subtotal * discount.Value / 100
		case models.DiscountFixed:
			off = discount.Value
		}
		if off > subtotal {
			off = subtotal
		}
	}

	return subtotal, off, subtotal - off
}
