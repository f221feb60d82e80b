package schedule

import "fmt"

// BusinessHours is the open/close window slots are generated within.
// Open must be strictly before Close; the same hours apply to every day.
type BusinessHours struct {
	Open  WallClock
	Close WallClock
}

// Reservation is one occupied interval on a day: [Start, Start+Duration).
// The end may run past closing time; stored bookings are never clamped.
type Reservation struct {
	Start    WallClock
	Duration int
}

// End returns the first minute after the reservation.
func (r Reservation) End() WallClock {
	return r.Start.Add(r.Duration)
}

// Slot is one candidate appointment start for a day, annotated for display.
// Slots are recomputed on every request and never persisted.
type Slot struct {
	Time     WallClock `json:"time"`
	Booked   bool      `json:"isBooked"`
	Selected bool      `json:"isSelected"`
}

// InvalidScheduleError reports nonsensical business hours or granularity.
type InvalidScheduleError struct {
	Reason string
}

func (e InvalidScheduleError) Error() string {
	return "invalid schedule configuration: " + e.Reason
}

// SlotStarts produces the ascending candidate start times for one day:
// Open, Open+g, Open+2g, ... strictly below Close. When the window is not an
// exact multiple of the granularity the last slot is simply the final one
// below Close; no short slot is emitted. Whether a service of a given
// duration still fits before closing is the caller's concern, since
// granularity and service duration are independent.
func SlotStarts(hours BusinessHours, granularity int) ([]WallClock, error) {
	if granularity <= 0 {
		return nil, InvalidScheduleError{Reason: fmt.Sprintf("granularity must be positive, got %d", granularity)}
	}
	if hours.Open >= hours.Close {
		return nil, InvalidScheduleError{
			Reason: fmt.Sprintf("open %s must precede close %s", hours.Open, hours.Close),
		}
	}

	starts := make([]WallClock, 0, int(hours.Close-hours.Open)/granularity+1)
	for t := hours.Open; t < hours.Close; t = t.Add(granularity) {
		starts = append(starts, t)
	}
	return starts, nil
}

// Occupied reports whether the candidate start instant falls inside any
// reservation's half-open [Start, Start+Duration) interval. A slot exactly at
// a reservation's end is free. Overlapping source reservations are tolerated;
// one match is enough. Day-bounded cardinality keeps the linear scan cheap.
func Occupied(candidate WallClock, reservations []Reservation) bool {
	for _, r := range reservations {
		if r.Start <= candidate && candidate < r.End() {
			return true
		}
	}
	return false
}

// ProjectDay composes slot generation and overlap classification into the
// annotated sequence the booking calendar renders. selected, when non-nil,
// marks the slot currently held in the booking draft. The projection is a
// pure function of its inputs; identical inputs yield identical output.
func ProjectDay(hours BusinessHours, granularity int, reservations []Reservation, selected *WallClock) ([]Slot, error) {
	starts, err := SlotStarts(hours, granularity)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, len(starts))
	for i, t := range starts {
		slots[i] = Slot{
			Time:     t,
			Booked:   Occupied(t, reservations),
			Selected: selected != nil && t == *selected,
		}
	}
	return slots, nil
}
