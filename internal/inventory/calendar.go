package inventory

import "time"

const dateLayout = "2006-01-02"

// TravelDates returns the next n bookable dates starting from "from",
// walking the calendar one day at a time and skipping the excluded
// weekday. Dates are formatted as YYYY-MM-DD and strictly increasing.
func TravelDates(from time.Time, n int, exclude time.Weekday) []string {
	dates := make([]string, 0, n)
	for offset := 0; len(dates) < n; offset++ {
		day := from.AddDate(0, 0, offset)
		if day.Weekday() == exclude {
			continue
		}
		dates = append(dates, day.Format(dateLayout))
	}
	return dates
}
