package booking

import (
	"bizly/models"
	"bizly/schedule"
)

// CreateBookingInput carries the booking form fields. Start accepts either the
// canonical 24-hour "HH:MM" encoding or the legacy "H:MM AM/PM" form encoding.
type CreateBookingInput struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	Service         string `json:"service" binding:"required"`
	StaffID         string `json:"staff_id"`
	Date            string `json:"date" binding:"required"`
	Start           string `json:"start" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Notes           string `json:"notes"`
}

// BookingService manages appointment bookings and the day calendar.
type BookingService interface {
	Create(input CreateBookingInput) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	ListByDate(date string) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	Cancel(id string) error
	Complete(id string) error
	UpdateNotes(id, notes string) error
	Delete(id string) error

	// DayAvailability projects the slot calendar for one day. selected is the
	// raw draft time from the UI, empty when nothing is selected.
	DayAvailability(date, selected string) ([]schedule.Slot, error)
}
