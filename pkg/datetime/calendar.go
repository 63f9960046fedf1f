package datetime

import "time"

const secondsPerDay = 24 * 60 * 60

// Normalize drops the clock and location of t, keeping the calendar date it
// shows in its own location, as UTC midnight.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from start to end. It is
// negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int((Normalize(end).Unix() - Normalize(start).Unix()) / secondsPerDay)
}

// StartOfYear returns Jan 1 of the given year.
func StartOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
