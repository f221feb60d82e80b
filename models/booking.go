package models

import "time"

// Booking statuses.
const (
	BookingActive    = "active"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking represents one reserved interval on a calendar day. Start is the
// canonical 24-hour "HH:MM" wall-clock string; the occupied interval is
// [Start, Start+Duration) and the end is not clamped to closing time.
// Time fields are never mutated in place; changes after creation are
// status-only.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	Service         string    `bson:"service" json:"service"`
	StaffID         string    `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	Date            string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start           string    `bson:"start" json:"start"` // "HH:MM", 24-hour
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Status          string    `bson:"status" json:"status"` // active | cancelled | completed
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
