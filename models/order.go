package models

import "time"

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderFulfilled = "fulfilled"
	OrderCancelled = "cancelled"
)

// OrderItem is one line of an order. Name and unit price are denormalized at
// order time so later product edits do not rewrite history.
type OrderItem struct {
	ProductID      string `bson:"product_id" json:"product_id"`
	Name           string `bson:"name" json:"name"`
	Quantity       int    `bson:"quantity" json:"quantity"`
	UnitPriceCents int64  `bson:"unit_price_cents" json:"unit_price_cents"`
}

// Order is one customer order with server-computed totals.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	CustomerID      string      `bson:"customer_id" json:"customer_id"`
	Items           []OrderItem `bson:"items" json:"items"`
	DiscountCode    string      `bson:"discount_code,omitempty" json:"discount_code,omitempty"`
	SubtotalCents   int64       `bson:"subtotal_cents" json:"subtotal_cents"`
	DiscountCents   int64       `bson:"discount_cents" json:"discount_cents"`
	TotalCents      int64       `bson:"total_cents" json:"total_cents"`
	Status          string      `bson:"status" json:"status"` // pending | paid | fulfilled | cancelled
	PaymentIntentID string      `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}
