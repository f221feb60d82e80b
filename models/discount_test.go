package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountRedeemable(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	base := Discount{
		Code:     "FALL10",
		Kind:     DiscountPercent,
		Value:    10,
		StartsAt: now.AddDate(0, 0, -7),
		EndsAt:   now.AddDate(0, 0, 7),
		Active:   true,
	}

	tests := []struct {
		name   string
		mutate func(*Discount)
		want   bool
	}{
		{name: "in window", mutate: func(d *Discount) {}, want: true},
		{name: "inactive", mutate: func(d *Discount) { d.Active = false }, want: false},
		{name: "not started", mutate: func(d *Discount) { d.StartsAt = now.AddDate(0, 0, 1) }, want: false},
		{name: "expired", mutate: func(d *Discount) { d.EndsAt = now.AddDate(0, 0, -1) }, want: false},
		{name: "usage exhausted", mutate: func(d *Discount) { d.UsageLimit = 5; d.UsedCount = 5 }, want: false},
		{name: "usage remaining", mutate: func(d *Discount) { d.UsageLimit = 5; d.UsedCount = 4 }, want: true},
		{name: "zero limit is unlimited", mutate: func(d *Discount) { d.UsedCount = 10000 }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			assert.Equal(t, tt.want, d.Redeemable(now))
		})
	}
}
