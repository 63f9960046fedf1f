package daycount

import (
	"time"

	"github.com/iwvelando/yearfrac/pkg/datetime"
)

// Segment is the part of a span that falls inside one calendar year.
type Segment struct {
	Year     int
	Days     int
	YearDays int
	Fraction float64
}

// ISDASegments splits the span between two dates into per-year pieces. The
// first segment runs from start to Jan 1 of the next year, whole years in
// between contribute one segment each with Fraction 1, and the last segment
// runs from Jan 1 of the end year to end. Dates are ordered first.
func ISDASegments(start, end time.Time) []Segment {
	start, end = datetime.Normalize(start), datetime.Normalize(end)
	if start.After(end) {
		start, end = end, start
	}
	y1, y2 := start.Year(), end.Year()

	if y1 == y2 {
		return []Segment{newSegment(y1, datetime.DaysBetween(start, end))}
	}

	segments := make([]Segment, 0, y2-y1+1)
	segments = append(segments, newSegment(y1, datetime.DaysBetween(start, datetime.StartOfYear(y1+1))))
	for y := y1 + 1; y < y2; y++ {
		segments = append(segments, newSegment(y, int(daysInYear(y))))
	}
	segments = append(segments, newSegment(y2, datetime.DaysBetween(datetime.StartOfYear(y2), end)))
	return segments
}

func newSegment(year, days int) Segment {
	yearDays := daysInYear(year)
	return Segment{
		Year:     year,
		Days:     days,
		YearDays: int(yearDays),
		Fraction: float64(days) / yearDays,
	}
}

// ActualActualISDA sums the per-year fractions of ISDASegments. Unlike the
// ActAct convention, which divides by an averaged year length, every day is
// weighted by the length of the calendar year it falls in.
func ActualActualISDA(start, end time.Time) float64 {
	var yf float64
	for _, s := range ISDASegments(start, end) {
		yf += s.Fraction
	}
	return yf
}
