package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantHour  int
		wantMin   int
		wantOff   int // seconds east of UTC
	}{
		{"date only", "2024-03-07", 2024, time.March, 7, 0, 0, 0},
		{"naive date-time", "2024-03-07T09:15:00", 2024, time.March, 7, 9, 15, 0},
		{"naive without seconds", "2024-03-07T09:15", 2024, time.March, 7, 9, 15, 0},
		{"space separator", "2024-03-07 09:15:00", 2024, time.March, 7, 9, 15, 0},
		{"utc designator", "2024-03-07T09:15:00Z", 2024, time.March, 7, 9, 15, 0},
		{"positive offset", "2024-03-07T23:30:00+02:00", 2024, time.March, 7, 23, 30, 2 * 3600},
		{"negative offset", "2024-03-07T00:30:00-05:00", 2024, time.March, 7, 0, 30, -5 * 3600},
		{"compact offset", "2024-03-07T09:00:00+0100", 2024, time.March, 7, 9, 0, 3600},
		{"fractional seconds", "2024-03-07T09:00:00.250+01:00", 2024, time.March, 7, 9, 0, 3600},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.value)
			require.NoError(t, err)

			year, month, day := ts.Date()
			assert.Equal(t, tc.wantYear, year)
			assert.Equal(t, tc.wantMonth, month)
			assert.Equal(t, tc.wantDay, day)
			assert.Equal(t, tc.wantHour, ts.Hour())
			assert.Equal(t, tc.wantMin, ts.Minute())
			_, offset := ts.Zone()
			assert.Equal(t, tc.wantOff, offset)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, value := range []string{"", "yesterday", "2024-13-01", "2024-02-30", "07/03/2024", "2024-03-07T25:00:00"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParseTimestamp(value)
			assert.ErrorIs(t, err, ErrInvalidTimestamp)
		})
	}
}
