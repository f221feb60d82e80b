package order

import (
	"testing"

	"bizly/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "p1", Name: "Shampoo", Quantity: 2, UnitPriceCents: 1250},
		{ProductID: "p2", Name: "Conditioner", Quantity: 1, UnitPriceCents: 1500},
	}

	tests := []struct {
		name                string
		discount            *models.Discount
		subtotal, off, tot  int64
	}{
		{name: "no discount", discount: nil, subtotal: 4000, off: 0, tot: 4000},
		{
			name:     "percent",
			discount: &models.Discount{Kind: models.DiscountPercent, Value: 10},
			subtotal: 4000, off: 400, tot: 3600,
		},
		{
			name:     "fixed",
			discount: &models.Discount{Kind: models.DiscountFixed, Value: 500},
			subtotal: 4000, off: 500, tot: 3500,
		},
		{
			name:     "fixed larger than subtotal clamps to zero",
			discount: &models.Discount{Kind: models.DiscountFixed, Value: 99999},
			subtotal: 4000, off: 4000, tot: 0,
		},
		{
			name:     "full percent",
			discount: &models.Discount{Kind: models.DiscountPercent, Value: 100},
			subtotal: 4000, off: 4000, tot: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, off, total := ComputeTotals(items, tt.discount)
			assert.Equal(t, tt.subtotal, subtotal)
			assert.Equal(t, tt.off, off)
			assert.Equal(t, tt.tot, total)
		})
	}
}

func TestComputeTotalsEmptyOrder(t *testing.T) {
	subtotal, off, total := ComputeTotals(nil, &models.Discount{Kind: models.DiscountPercent, Value: 50})
	assert.Zero(t, subtotal)
	assert.Zero(t, off)
	assert.Zero(t, total)
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		ok       bool
	}{
		{models.OrderPending, models.OrderPaid, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderPaid, models.OrderFulfilled, true},
		{models.OrderPaid, models.OrderCancelled, true},
		{models.OrderPending, models.OrderFulfilled, false},
		{models.OrderFulfilled, models.OrderPaid, false},
		{models.OrderCancelled, models.OrderPaid, false},
		{models.OrderPaid, models.OrderPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, transitionAllowed(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
