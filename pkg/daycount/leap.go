package daycount

import "time"

// IsLeapYear applies the proleptic Gregorian rule to any year, including
// zero and negative years.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsEndOfMonth reports whether day is the last day of the given month.
func IsEndOfMonth(day int, month time.Month, year int) bool {
	switch month {
	case time.April, time.June, time.September, time.November:
		return day == 30
	case time.February:
		if IsLeapYear(year) {
			return day == 29
		}
		return day == 28
	default:
		return day == 31
	}
}

func daysInYear(year int) float64 {
	if IsLeapYear(year) {
		return daysPerLeapYear
	}
	return daysPerYear
}
