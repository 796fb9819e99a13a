package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIcsDuration(t *testing.T) {
	testCases := []struct {
		value    string
		wantDays int
		want     time.Duration
	}{
		{"PT15M", 0, 15 * time.Minute},
		{"PT1H30M", 0, 90 * time.Minute},
		{"P1D", 1, 0},
		{"P2W", 14, 0},
		{"P1DT12H", 1, 12 * time.Hour},
		{"PT45S", 0, 45 * time.Second},
		{"+PT1H", 0, time.Hour},
		{"-PT10M", 0, -10 * time.Minute},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			days, d, err := parseIcsDuration(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, days)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestParseIcsDuration_Invalid(t *testing.T) {
	for _, value := range []string{"", "P", "1H", "PT", "PTH", "P1H", "PT1D", "PT1H5", "P1X"} {
		t.Run(value, func(t *testing.T) {
			_, _, err := parseIcsDuration(value)
			assert.Error(t, err)
		})
	}
}
