package models

import "time"

// Product is one sellable item from the products screen. Prices are kept in
// cents to avoid float drift in order totals.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	SKU         string    `bson:"sku" json:"sku"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	PriceCents  int64     `bson:"price_cents" json:"price_cents"`
	Stock       int       `bson:"stock" json:"stock"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
