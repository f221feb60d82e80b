package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) WallClock {
	t.Helper()
	w, err := Parse(raw)
	require.NoError(t, err)
	return w
}

func TestSlotStarts(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
		granularity int
		want        []WallClock
	}{
		{
			name: "one hour at quarter granularity",
			open: "09:00", close: "10:00", granularity: 15,
			want: []WallClock{540, 555, 570, 585},
		},
		{
			name: "close excluded even when aligned",
			open: "09:00", close: "09:30", granularity: 30,
			want: []WallClock{540},
		},
		{
			name: "no short final slot on uneven window",
			open: "09:00", close: "09:50", granularity: 20,
			want: []WallClock{540, 560, 580},
		},
		{
			name: "single slot window",
			open: "09:00", close: "09:10", granularity: 15,
			want: []WallClock{540},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := BusinessHours{Open: mustParse(t, tt.open), Close: mustParse(t, tt.close)}
			got, err := SlotStarts(hours, tt.granularity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotStartsProperties(t *testing.T) {
	hours := BusinessHours{Open: 540, Close: 1020}
	for _, granularity := range []int{5, 15, 30, 45, 60, 90} {
		starts, err := SlotStarts(hours, granularity)
		require.NoError(t, err)
		require.NotEmpty(t, starts)

		assert.Equal(t, hours.Open, starts[0], "first slot must open the day")
		for i, s := range starts {
			assert.GreaterOrEqual(t, s, hours.Open)
			assert.Less(t, s, hours.Close)
			if i > 0 {
				assert.Greater(t, s, starts[i-1], "sequence must be strictly increasing")
			}
		}
	}
}

func TestSlotStartsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		hours       BusinessHours
		granularity int
	}{
		{name: "open after close", hours: BusinessHours{Open: 600, Close: 540}, granularity: 15},
		{name: "open equals close", hours: BusinessHours{Open: 540, Close: 540}, granularity: 15},
		{name: "zero granularity", hours: BusinessHours{Open: 540, Close: 600}, granularity: 0},
		{name: "negative granularity", hours: BusinessHours{Open: 540, Close: 600}, granularity: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SlotStarts(tt.hours, tt.granularity)
			var invalid InvalidScheduleError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestOccupied(t *testing.T) {
	reservations := []Reservation{{Start: 600, Duration: 30}}

	assert.False(t, Occupied(599, reservations), "minute before start is free")
	assert.True(t, Occupied(600, reservations), "start minute is occupied")
	assert.True(t, Occupied(615, reservations), "middle is occupied")
	assert.True(t, Occupied(629, reservations), "last covered minute is occupied")
	assert.False(t, Occupied(630, reservations), "end minute is free, interval is half-open")
}

func TestOccupiedToleratesOverlappingReservations(t *testing.T) {
	// Double-booked source data is possible; classification only needs one match.
	reservations := []Reservation{
		{Start: 600, Duration: 60},
		{Start: 615, Duration: 30},
	}
	assert.True(t, Occupied(620, reservations))
	assert.False(t, Occupied(660, reservations))
	assert.False(t, Occupied(0, nil))
}

func TestProjectDay(t *testing.T) {
	hours := BusinessHours{Open: mustParse(t, "09:00"), Close: mustParse(t, "17:00")}
	reservations := []Reservation{{Start: mustParse(t, "10:00"), Duration: 30}}

	slots, err := ProjectDay(hours, 15, reservations, nil)
	require.NoError(t, err)
	require.Len(t, slots, 32)

	booked := map[WallClock]bool{}
	for _, s := range slots {
		if s.Booked {
			booked[s.Time] = true
		}
		assert.False(t, s.Selected, "nothing selected when selected is nil")
	}
	assert.Equal(t, map[WallClock]bool{600: true, 615: true}, booked,
		"exactly 10:00 and 10:15 are covered by a 30-minute booking at 10:00")
}

func TestProjectDaySelection(t *testing.T) {
	hours := BusinessHours{Open: 540, Close: 600}
	selected := WallClock(570)

	slots, err := ProjectDay(hours, 15, nil, &selected)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for _, s := range slots {
		assert.Equal(t, s.Time == selected, s.Selected)
	}
}

func TestProjectDayIdempotent(t *testing.T) {
	hours := BusinessHours{Open: 540, Close: 1020}
	reservations := []Reservation{
		{Start: 540, Duration: 45},
		{Start: 780, Duration: 90},
		{Start: 1000, Duration: 60}, // runs past close, not clamped
	}
	selected := WallClock(720)

	first, err := ProjectDay(hours, 15, reservations, &selected)
	require.NoError(t, err)
	second, err := ProjectDay(hours, 15, reservations, &selected)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProjectDayPropagatesConfigurationError(t *testing.T) {
	_, err := ProjectDay(BusinessHours{Open: 600, Close: 540}, 15, nil, nil)
	var invalid InvalidScheduleError
	require.ErrorAs(t, err, &invalid)
}
