package models

import "time"

// Discount kinds.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Discount is a redeemable code applied to orders.
type Discount struct {
	ID         string    `bson:"id" json:"id"`
	Code       string    `bson:"code" json:"code"`
	Kind       string    `bson:"kind" json:"kind"`   // percent | fixed
	Value      int64     `bson:"value" json:"value"` // percent points, or cents for fixed
	StartsAt   time.Time `bson:"starts_at" json:"starts_at"`
	EndsAt     time.Time `bson:"ends_at" json:"ends_at"`
	UsageLimit int       `bson:"usage_limit" json:"usage_limit"` // 0 means unlimited
	UsedCount  int       `bson:"used_count" json:"used_count"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Redeemable reports whether the code can be applied at the given instant.
func (d Discount) Redeemable(at time.Time) bool {
	if !d.Active {
		return false
	}
	if at.Before(d.StartsAt) || at.After(d.EndsAt) {
		return false
	}
	if d.UsageLimit > 0 && d.UsedCount >= d.UsageLimit {
		return false
	}
	return true
}
