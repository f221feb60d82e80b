// Package schedule implements the appointment slot availability engine:
// wall-clock time arithmetic, candidate slot generation over business hours,
// and overlap classification against a day's existing bookings. It is pure
// computation; fetching bookings and rendering the calendar belong to callers.
package schedule

import (
	"fmt"
	"strings"
)

// WallClock is a time of day expressed as minutes since midnight, always in
// [0, 1440). It carries no date and no timezone.
type WallClock int

// MinutesPerDay bounds every valid WallClock value.
const MinutesPerDay = 1440

// InvalidTimeError reports a wall-clock string that does not match the
// expected encoding.
type InvalidTimeError struct {
	Raw string
}

func (e InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid wall-clock time %q", e.Raw)
}

// Parse converts a strict 24-hour "HH:MM" string into a WallClock.
// This is the canonical encoding used by stored bookings.
func Parse(raw string) (WallClock, error) {
	if len(raw) != 5 || raw[2] != ':' {
		return 0, InvalidTimeError{Raw: raw}
	}
	hour, ok1 := twoDigits(raw[0], raw[1])
	minute, ok2 := twoDigits(raw[3], raw[4])
	if !ok1 || !ok2 || hour > 23 || minute > 59 {
		return 0, InvalidTimeError{Raw: raw}
	}
	return WallClock(hour*60 + minute), nil
}

// ParseAMPM converts a 12-hour "H:MM AM" / "HH:MM PM" string into a WallClock.
// Booking-creation forms historically submitted this encoding; it is decoded
// at the boundary and never kept internally.
func ParseAMPM(raw string) (WallClock, error) {
	trimmed := strings.TrimSpace(raw)
	fields := strings.Fields(trimmed)
	if len(fields) != 2 {
		return 0, InvalidTimeError{Raw: raw}
	}
	clock, meridiem := fields[0], strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, InvalidTimeError{Raw: raw}
	}

	colon := strings.IndexByte(clock, ':')
	if colon < 1 || colon > 2 || len(clock)-colon != 3 {
		return 0, InvalidTimeError{Raw: raw}
	}
	var hour int
	if colon == 1 {
		h, ok := oneDigit(clock[0])
		if !ok {
			return 0, InvalidTimeError{Raw: raw}
		}
		hour = h
	} else {
		h, ok := twoDigits(clock[0], clock[1])
		if !ok {
			return 0, InvalidTimeError{Raw: raw}
		}
		hour = h
	}
	minute, ok := twoDigits(clock[colon+1], clock[colon+2])
	if !ok || hour < 1 || hour > 12 || minute > 59 {
		return 0, InvalidTimeError{Raw: raw}
	}

	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return WallClock(hour*60 + minute), nil
}

// String renders the canonical 24-hour "HH:MM" form.
func (t WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add returns t shifted by delta minutes. The result deliberately does not
// wrap at midnight: a value >= 1440 means "end of day or later", which for
// same-day bookings is a data error rather than a next-day time.
func (t WallClock) Add(delta int) WallClock {
	return t + WallClock(delta)
}

// Valid reports whether t lies within a single day.
func (t WallClock) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// MarshalJSON renders the canonical "HH:MM" string.
func (t WallClock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func oneDigit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

func twoDigits(hi, lo byte) (int, bool) {
	h, ok1 := oneDigit(hi)
	l, ok2 := oneDigit(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h*10 + l, true
}
