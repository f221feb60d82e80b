package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    WallClock
		wantErr bool
	}{
		{name: "midnight", raw: "00:00", want: 0},
		{name: "morning", raw: "09:00", want: 540},
		{name: "midday", raw: "12:30", want: 750},
		{name: "last minute", raw: "23:59", want: 1439},
		{name: "hour out of range", raw: "25:61", wantErr: true},
		{name: "minute out of range", raw: "10:60", wantErr: true},
		{name: "missing leading zero", raw: "9:00", wantErr: true},
		{name: "no colon", raw: "0900", wantErr: true},
		{name: "trailing garbage", raw: "09:00x", wantErr: true},
		{name: "letters", raw: "ab:cd", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var invalid InvalidTimeError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.raw, invalid.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAMPM(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    WallClock
		wantErr bool
	}{
		{name: "morning", raw: "9:00 AM", want: 540},
		{name: "two digit hour", raw: "10:15 AM", want: 615},
		{name: "afternoon", raw: "2:30 PM", want: 870},
		{name: "noon", raw: "12:00 PM", want: 720},
		{name: "midnight", raw: "12:00 AM", want: 0},
		{name: "lowercase meridiem", raw: "3:45 pm", want: 1005},
		{name: "padded", raw: "  4:05 PM  ", want: 965},
		{name: "hour zero", raw: "0:30 AM", wantErr: true},
		{name: "hour thirteen", raw: "13:00 PM", wantErr: true},
		{name: "minute out of range", raw: "9:60 AM", wantErr: true},
		{name: "no meridiem", raw: "9:00", wantErr: true},
		{name: "bad meridiem", raw: "9:00 XM", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAMPM(tt.raw)
			if tt.wantErr {
				var invalid InvalidTimeError
				require.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWallClockString(t *testing.T) {
	assert.Equal(t, "00:00", WallClock(0).String())
	assert.Equal(t, "09:05", WallClock(545).String())
	assert.Equal(t, "23:59", WallClock(1439).String())
}

func TestWallClockAddDoesNotWrap(t *testing.T) {
	// An appointment running past midnight is a data error, not a next-day
	// time, so Add must not reduce modulo 1440.
	late := WallClock(1430).Add(30)
	assert.Equal(t, WallClock(1460), late)
	assert.False(t, late.Valid())
}

func TestWallClockRoundTrip(t *testing.T) {
	for _, raw := range []string{"00:00", "07:45", "12:00", "18:30", "23:59"} {
		parsed, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, parsed.String())
	}
}

func TestWallClockMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Slot{Time: 570, Booked: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"09:30","isBooked":true,"isSelected":false}`, string(b))
}
