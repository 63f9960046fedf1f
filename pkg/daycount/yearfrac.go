package daycount

import (
	"time"

	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/datetime"
)

const (
	daysPer360Year  = float64(constants.DaysPer360Year)
	daysPerYear     = float64(constants.DaysPerYear)
	daysPerLeapYear = float64(constants.DaysPerLeapYear)
)

// YearFraction returns the non-negative number of years between two dates.
// The dates are swapped when start is after end. Only the calendar date of
// each argument is used.
func (c Convention) YearFraction(start, end time.Time) float64 {
	start, end = datetime.Normalize(start), datetime.Normalize(end)
	if start.Equal(end) {
		return 0
	}
	if start.After(end) {
		start, end = end, start
	}
	return c.dayCount(start, end) / c.basis(start, end)
}

// YearFractionSigned is YearFraction negated when start is after end.
func (c Convention) YearFractionSigned(start, end time.Time) float64 {
	yf := c.YearFraction(start, end)
	if datetime.Normalize(start).After(datetime.Normalize(end)) {
		return -yf
	}
	return yf
}

// dayCount is the numerator for an ordered pair of dates.
func (c Convention) dayCount(start, end time.Time) float64 {
	switch c {
	case US30360:
		return us30360Days(start, end)
	case EU30360:
		return eu30360Days(start, end)
	default:
		return float64(datetime.DaysBetween(start, end))
	}
}

// basis is the denominator for an ordered pair of dates.
func (c Convention) basis(start, end time.Time) float64 {
	switch c {
	case ActAct:
		return actActBasis(start, end)
	case Act365:
		return daysPerYear
	default:
		return daysPer360Year
	}
}

// us30360Days applies the NASD end-of-month rules. The checks on d1 read the
// unadjusted start day.
func us30360Days(start, end time.Time) float64 {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	startFebEOM := isEndOfFebruary(start)

	if startFebEOM && isEndOfFebruary(end) {
		d2 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	if d1 == 31 || startFebEOM {
		d1 = 30
	}
	return days360(y1, m1, d1, y2, m2, d2)
}

func isEndOfFebruary(t time.Time) bool {
	y, m, d := t.Date()
	return m == time.February && IsEndOfMonth(d, m, y)
}

func eu30360Days(start, end time.Time) float64 {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	return days360(y1, m1, min(d1, 30), y2, m2, min(d2, 30))
}

func days360(y1 int, m1 time.Month, d1 int, y2 int, m2 time.Month, d2 int) float64 {
	return float64(constants.DaysPer360Year*(y2-y1) +
		constants.DaysPerMonth360*int(m2-m1) +
		(d2 - d1))
}

// actActBasis is the YEARFRAC basis 1 denominator.
func actActBasis(start, end time.Time) float64 {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	if y1 == y2 {
		return daysInYear(y1)
	}

	// Under a year, across one year boundary: 366 only when Feb 29 is inside.
	if y2 == y1+1 && (m1 > m2 || (m1 == m2 && d1 > d2)) {
		switch {
		case IsLeapYear(y1):
			if m1 < time.February || (m1 == time.February && d1 <= 29) {
				return daysPerLeapYear
			}
			return daysPerYear
		case IsLeapYear(y2):
			if m2 > time.February || (m2 == time.February && d2 == 29) {
				return daysPerLeapYear
			}
			return daysPerYear
		default:
			return daysPerYear
		}
	}

	var total float64
	for y := y1; y <= y2; y++ {
		total += daysInYear(y)
	}
	return total / float64(y2-y1+1)
}
