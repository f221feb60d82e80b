package booking

import (
	"fmt"
	"time"

	bookingRepo "bizly/database/repository/booking"
	"bizly/models"
	"bizly/schedule"
	"bizly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService implementation.
// Hours and Granularity come from configuration at wiring time; the same
// window applies to every day.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	Hours       schedule.BusinessHours
	Granularity int
}

// Create validates the form payload, decodes the start time from whichever
// wall-clock encoding the client used, rejects overlaps against the day's
// active bookings, and persists the booking.
func (s *DefaultBookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD day", input.Date)}
	}
	if input.DurationMinutes <= 0 {
		return nil, ValidationError{Field: "duration_minutes", Reason: "must be positive"}
	}

	start, err := parseStart(input.Start)
	if err != nil {
		return nil, ValidationError{Field: "start", Reason: err.Error()}
	}
	if start < s.Hours.Open || start >= s.Hours.Close {
		return nil, ValidationError{
			Field:  "start",
			Reason: fmt.Sprintf("%s is outside business hours %s-%s", start, s.Hours.Open, s.Hours.Close),
		}
	}

	existing, err := s.Repo.GetActiveByDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", input.Date, err)
	}
	if overlapsAny(start, input.DurationMinutes, existing) {
		logger.Warn("rejected conflicting booking",
			zap.String("date", input.Date), zap.String("start", start.String()))
		return nil, ConflictError{Date: input.Date, Start: start.String()}
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CustomerName:    input.CustomerName,
		Service:         input.Service,
		StaffID:         input.StaffID,
		Date:            input.Date,
		Start:           start.String(),
		DurationMinutes: input.DurationMinutes,
		Status:          models.BookingActive,
		Notes:           input.Notes,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("date", booking.Date),
		zap.String("start", booking.Start))
	return booking, nil
}

// GetByID returns one booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListByDate returns every booking on a day, any status.
func (s *DefaultBookingService) ListByDate(date string) ([]models.Booking, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD day", date)}
	}
	return s.Repo.GetByDate(date)
}

// ListAll returns every booking.
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// Cancel releases a booking's slot via the status flag.
func (s *DefaultBookingService) Cancel(id string) error {
	return s.Repo.SetStatus(id, models.BookingCancelled)
}

// Complete marks a booking done; its slot stays historical.
func (s *DefaultBookingService) Complete(id string) error {
	return s.Repo.SetStatus(id, models.BookingCompleted)
}

// UpdateNotes rewrites a booking's free-form notes. Time fields stay immutable;
// moving an appointment is cancel plus re-create so the conflict check reruns.
func (s *DefaultBookingService) UpdateNotes(id, notes string) error {
	return s.Repo.SetNotes(id, notes)
}

// Delete removes the booking document entirely.
func (s *DefaultBookingService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// parseStart accepts the canonical 24-hour encoding first, then the legacy
// 12-hour form encoding. Strings are never kept raw past this point.
func parseStart(raw string) (schedule.WallClock, error) {
	if t, err := schedule.Parse(raw); err == nil {
		return t, nil
	}
	return schedule.ParseAMPM(raw)
}

// overlapsAny checks the new interval [start, start+duration) against each
// existing booking with the same half-open predicate the calendar uses for
// display, so write-time rejection and display-time marking cannot disagree.
func overlapsAny(start schedule.WallClock, duration int, existing []models.Booking) bool {
	end := start.Add(duration)
	for _, b := range existing {
		bStart, err := schedule.Parse(b.Start)
		if err != nil {
			// A malformed stored time blocks nothing; it is surfaced by the
			// availability projection instead.
			continue
		}
		bEnd := bStart.Add(b.DurationMinutes)
		if start < bEnd && bStart < end {
			return true
		}
	}
	return false
}
