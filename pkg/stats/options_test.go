package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestNewOptions(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		options, err := NewOptions("", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, options.Period)
		assert.Empty(t, options.SkipPrefixes)
	})
	t.Run("year and month", func(t *testing.T) {
		options, err := NewOptions("", intPtr(2024), intPtr(3))
		require.NoError(t, err)
		require.NotNil(t, options.Period)
		assert.Equal(t, Period{Year: 2024, Month: time.March}, *options.Period)
	})
	t.Run("skip list", func(t *testing.T) {
		options, err := NewOptions("Lunch,Gym ,", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Lunch", "Gym "}, options.SkipPrefixes)
	})
}

func TestNewOptions_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		year, month *int
		wantMessage string
	}{
		{"year without month", intPtr(2024), nil, "both year and month must be provided"},
		{"month without year", nil, intPtr(3), "both year and month must be provided"},
		{"month too small", intPtr(2024), intPtr(0), "month must be between 1 and 12"},
		{"month too large", intPtr(2024), intPtr(13), "month must be between 1 and 12"},
		{"year not positive", intPtr(0), intPtr(3), "year must be positive"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOptions("", tc.year, tc.month)
			assert.ErrorIs(t, err, ErrInvalidOptions)
			assert.ErrorContains(t, err, tc.wantMessage)
		})
	}
}

func TestParseSkipList(t *testing.T) {
	assert.Nil(t, ParseSkipList(""))
	assert.Nil(t, ParseSkipList(",,"))
	assert.Equal(t, []string{"Lunch"}, ParseSkipList("Lunch"))
	assert.Equal(t, []string{"Lunch ", " Gym"}, ParseSkipList("Lunch , Gym"))
}
