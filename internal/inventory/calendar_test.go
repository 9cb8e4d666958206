package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelDates(t *testing.T) {
	// 2025-01-06 is a Monday.
	monday := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	dates := TravelDates(monday, 7, time.Sunday)
	require.Len(t, dates, 7)
	assert.Equal(t, []string{
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09",
		"2025-01-10", "2025-01-11", "2025-01-13",
	}, dates)

	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i], "dates must be strictly increasing")
	}
	for _, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestTravelDatesStartsOnExcludedWeekday(t *testing.T) {
	// 2025-01-05 is a Sunday; the window must start on Monday instead.
	sunday := time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)

	dates := TravelDates(sunday, 7, time.Sunday)
	require.Len(t, dates, 7)
	assert.Equal(t, "2025-01-06", dates[0])
}

func TestTravelDatesOtherExcludedWeekday(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	dates := TravelDates(monday, 7, time.Wednesday)
	require.Len(t, dates, 7)
	assert.NotContains(t, dates, "2025-01-08")
	assert.Contains(t, dates, "2025-01-12")
}
