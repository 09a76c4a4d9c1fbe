// Package daytime holds the calendar-day helpers used to key all daily
// aggregates. Every store and calculator agrees on the YYYY-MM-DD local
// date string produced here; a format mismatch silently yields "no data".
package daytime

import (
	"time"
)

const KeyLayout = "2006-01-02"

// Key returns the calendar-day string for the given instant,
// in the local timezone.
func Key(t time.Time) string {
	return t.In(time.Local).Format(KeyLayout)
}

// TodayKey returns the calendar-day string for the current local day.
func TodayKey() string {
	return Key(time.Now())
}

// DayBounds returns the first and last instant of the local calendar day
// identified by the given day key.
func DayBounds(day string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(KeyLayout, day, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, nil
}

// IsWithinDay reports whether the given instant falls inside the local
// calendar day identified by the day key. An unparsable key is simply
// not a match.
func IsWithinDay(instant time.Time, day string) bool {
	start, end, err := DayBounds(day)
	if err != nil {
		return false
	}
	return !instant.Before(start) && !instant.After(end)
}
