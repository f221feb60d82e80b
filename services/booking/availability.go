package booking

import (
	"fmt"
	"time"

	"bizly/models"
	"bizly/schedule"
	"bizly/utils"

	"go.uber.org/zap"
)

// DayAvailability fetches the day's active bookings and projects the slot
// calendar over them. The projection itself is pure; this method only supplies
// its inputs.
func (s *DefaultBookingService) DayAvailability(date, selected string) ([]schedule.Slot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD day", date)}
	}

	bookings, err := s.Repo.GetActiveByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	var selectedTime *schedule.WallClock
	if selected != "" {
		t, err := parseStart(selected)
		if err != nil {
			return nil, ValidationError{Field: "selected", Reason: err.Error()}
		}
		selectedTime = &t
	}

	return schedule.ProjectDay(s.Hours, s.Granularity, toReservations(bookings), selectedTime)
}

// toReservations maps stored bookings to the engine's interval type. A stored
// start that no longer parses is logged and skipped rather than failing the
// whole day.
func toReservations(bookings []models.Booking) []schedule.Reservation {
	reservations := make([]schedule.Reservation, 0, len(bookings))
	for _, b := range bookings {
		start, err := schedule.Parse(b.Start)
		if err != nil {
			utils.GetLogger().Warn("skipping booking with malformed start time",
				zap.String("id", b.ID), zap.String("start", b.Start))
			continue
		}
		reservations = append(reservations, schedule.Reservation{
			Start:    start,
			Duration: b.DurationMinutes,
		})
	}
	return reservations
}
