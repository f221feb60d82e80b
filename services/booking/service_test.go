package booking

import (
	"fmt"
	"testing"

	"bizly/models"
	"bizly/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetActiveByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && b.Status == models.BookingActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) SetStatus(id, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) SetNotes(id, notes string) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	b.Notes = notes
	return nil
}

func (f *fakeBookingRepo) CountByDate(date string) (int, error) {
	bs, _ := f.GetByDate(date)
	return len(bs), nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{
		Repo:        repo,
		Hours:       schedule.BusinessHours{Open: 540, Close: 1020}, // 09:00-17:00
		Granularity: 15,
	}
	return svc, repo
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(CreateBookingInput{
		CustomerName:    "Ada Park",
		Service:         "Haircut",
		Date:            "2026-09-14",
		Start:           "10:00",
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "10:00", created.Start)
	assert.Equal(t, models.BookingActive, created.Status)
}

func TestCreateBookingAcceptsLegacyEncoding(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(CreateBookingInput{
		CustomerName:    "Ada Park",
		Service:         "Haircut",
		Date:            "2026-09-14",
		Start:           "2:30 PM",
		DurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "14:30", created.Start, "stored form is always canonical 24-hour")
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(CreateBookingInput{
		CustomerName: "Ada Park", Service: "Haircut",
		Date: "2026-09-14", Start: "10:00", DurationMinutes: 30,
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		start    string
		duration int
		conflict bool
	}{
		{name: "same slot", start: "10:00", duration: 30, conflict: true},
		{name: "starts inside", start: "10:15", duration: 30, conflict: true},
		{name: "covers existing", start: "09:45", duration: 60, conflict: true},
		{name: "ends at existing start", start: "09:30", duration: 30, conflict: false},
		{name: "starts at existing end", start: "10:30", duration: 30, conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(CreateBookingInput{
				CustomerName: "Ben Cho", Service: "Shave",
				Date: "2026-09-14", Start: tt.start, DurationMinutes: tt.duration,
			})
			if tt.conflict {
				var conflict ConflictError
				require.ErrorAs(t, err, &conflict)
				assert.Equal(t, "2026-09-14", conflict.Date)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingCancelledSlotIsReusable(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Create(CreateBookingInput{
		CustomerName: "Ada Park", Service: "Haircut",
		Date: "2026-09-14", Start: "10:00", DurationMinutes: 30,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(first.ID))

	_, err = svc.Create(CreateBookingInput{
		CustomerName: "Ben Cho", Service: "Haircut",
		Date: "2026-09-14", Start: "10:00", DurationMinutes: 30,
	})
	require.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name  string
		input CreateBookingInput
		field string
	}{
		{
			name:  "bad date",
			input: CreateBookingInput{CustomerName: "A", Service: "S", Date: "14/09/2026", Start: "10:00", DurationMinutes: 30},
			field: "date",
		},
		{
			name:  "bad start",
			input: CreateBookingInput{CustomerName: "A", Service: "S", Date: "2026-09-14", Start: "25:61", DurationMinutes: 30},
			field: "start",
		},
		{
			name:  "before opening",
			input: CreateBookingInput{CustomerName: "A", Service: "S", Date: "2026-09-14", Start: "08:45", DurationMinutes: 30},
			field: "start",
		},
		{
			name:  "at close",
			input: CreateBookingInput{CustomerName: "A", Service: "S", Date: "2026-09-14", Start: "17:00", DurationMinutes: 30},
			field: "start",
		},
		{
			name:  "zero duration",
			input: CreateBookingInput{CustomerName: "A", Service: "S", Date: "2026-09-14", Start: "10:00", DurationMinutes: 0},
			field: "duration_minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)
			var invalid ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestDayAvailability(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(CreateBookingInput{
		CustomerName: "Ada Park", Service: "Haircut",
		Date: "2026-09-14", Start: "10:00", DurationMinutes: 30,
	})
	require.NoError(t, err)

	slots, err := svc.DayAvailability("2026-09-14", "09:30")
	require.NoError(t, err)
	require.Len(t, slots, 32, "09:00-17:00 at 15-minute granularity")

	for _, s := range slots {
		switch s.Time.String() {
		case "10:00", "10:15":
			assert.True(t, s.Booked, "slot %s should be booked", s.Time)
		default:
			assert.False(t, s.Booked, "slot %s should be free", s.Time)
		}
		assert.Equal(t, s.Time == schedule.WallClock(570), s.Selected)
	}
}

func TestDayAvailabilityCancelledBookingFreesSlots(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(CreateBookingInput{
		CustomerName: "Ada Park", Service: "Haircut",
		Date: "2026-09-14", Start: "10:00", DurationMinutes: 30,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(created.ID))

	slots, err := svc.DayAvailability("2026-09-14", "")
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.Booked)
		assert.False(t, s.Selected)
	}
}

func TestDayAvailabilityRejectsBadInputs(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.DayAvailability("not-a-day", "")
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)

	_, err = svc.DayAvailability("2026-09-14", "26:00")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "selected", invalid.Field)
}
