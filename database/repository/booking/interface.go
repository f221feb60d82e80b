package bookingRepo

import "bizly/models"

// BookingRepository defines persistence for appointment bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Delete(id string) error
	GetByID(id string) (*models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
	GetActiveByDate(date string) ([]models.Booking, error)
	GetAll() ([]models.Booking, error)
	SetStatus(id, status string) error
	SetNotes(id, notes string) error
	CountByDate(date string) (int, error)
}
