package daycount

import (
	"testing"
	"time"

	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/datetime"
	"github.com/stretchr/testify/assert"
)

const delta = constants.YearFractionTolerance

func date(s string) time.Time {
	return datetime.MustParseDate(s)
}

func TestYearFractionSpreadsheetVectors(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected [5]float64 // indexed by basis code
	}{
		{
			name:     "Feb 28 1978 to May 17 2020",
			start:    "1978-02-28",
			end:      "2020-05-17",
			expected: [5]float64{42.21388888889, 42.21424933147, 42.83055555556, 42.24383561644, 42.21944444444},
		},
		{
			name:     "Dec 2 1993 to Apr 18 2022",
			start:    "1993-12-02",
			end:      "2022-04-18",
			expected: [5]float64{28.37777777778, 28.37638039609, 28.78888888889, 28.39452054795, 28.37777777778},
		},
		{
			name:     "Month end to month end",
			start:    "2011-01-31",
			end:      "2011-03-31",
			expected: [5]float64{0.16666666667, 0.16164383562, 0.16388888889, 0.16164383562, 0.16666666667},
		},
		{
			name:     "Leap February end to March end",
			start:    "2012-02-29",
			end:      "2012-03-31",
			expected: [5]float64{0.08611111111, 0.08469945355, 0.08611111111, 0.08493150685, 0.08611111111},
		},
		{
			name:     "February end to February end",
			start:    "2011-02-28",
			end:      "2012-02-29",
			expected: [5]float64{1.0, 1.00136798906, 1.01666666667, 1.00273972603, 1.00277777778},
		},
		{
			name:     "Short span into a leap year",
			start:    "2011-12-15",
			end:      "2012-03-01",
			expected: [5]float64{0.21111111111, 0.21038251366, 0.21388888889, 0.21095890411, 0.21111111111},
		},
		{
			name:     "Short span out of a leap year",
			start:    "2012-03-01",
			end:      "2013-02-28",
			expected: [5]float64{0.99166666667, 0.99726027397, 1.01111111111, 0.99726027397, 0.99166666667},
		},
		{
			name:     "Just over a year across a leap year",
			start:    "2019-12-31",
			end:      "2021-01-01",
			expected: [5]float64{1.00277777778, 1.00456204380, 1.01944444444, 1.00547945205, 1.00277777778},
		},
		{
			name:     "Common February end to March end",
			start:    "2011-02-28",
			end:      "2011-03-31",
			expected: [5]float64{0.08611111111, 0.08493150685, 0.08611111111, 0.08493150685, 0.08888888889},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range Conventions() {
				got := c.YearFraction(date(tt.start), date(tt.end))
				assert.InDelta(t, tt.expected[c.Code()], got, delta, "convention %s", c)
			}
		})
	}
}

func TestYearFractionOrderIndependent(t *testing.T) {
	pairs := [][2]string{
		{"1978-02-28", "2020-05-17"},
		{"2011-02-28", "2012-02-29"},
		{"2000-01-31", "2000-02-29"},
		{"1899-12-31", "1900-03-01"},
	}
	for _, c := range Conventions() {
		for _, p := range pairs {
			s, e := date(p[0]), date(p[1])
			forward := c.YearFraction(s, e)
			backward := c.YearFraction(e, s)
			assert.Equal(t, forward, backward, "%s %s..%s", c, p[0], p[1])
			assert.GreaterOrEqual(t, forward, 0.0)
		}
	}
}

func TestYearFractionSigned(t *testing.T) {
	start, end := date("1978-02-28"), date("2020-05-17")

	assert.InDelta(t, -42.21388888889, US30360.YearFractionSigned(end, start), delta)
	assert.InDelta(t, 42.21388888889, US30360.YearFractionSigned(start, end), delta)

	for _, c := range Conventions() {
		assert.Equal(t, -c.YearFractionSigned(end, start), c.YearFractionSigned(start, end), "convention %s", c)
		assert.Equal(t, c.YearFraction(start, end), c.YearFractionSigned(start, end), "convention %s", c)
	}
}

func TestYearFractionSameDate(t *testing.T) {
	dates := []string{"1978-02-28", "2000-02-29", "2020-12-31", "2021-01-01"}
	for _, c := range Conventions() {
		for _, d := range dates {
			assert.Zero(t, c.YearFraction(date(d), date(d)))
			assert.Zero(t, c.YearFractionSigned(date(d), date(d)))
		}
	}
}

func TestYearFractionIgnoresClockAndLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	start := time.Date(1978, time.February, 28, 23, 59, 0, 0, tokyo)
	end := time.Date(2020, time.May, 17, 0, 1, 0, 0, time.UTC)

	assert.InDelta(t, 42.83055555556, Act360.YearFraction(start, end), delta)
	assert.Zero(t, Act365.YearFraction(start, time.Date(1978, time.February, 28, 1, 0, 0, 0, tokyo)))
}

func TestUS30360EndOfMonthRules(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected float64 // days
	}{
		{"Start on 31st", "2020-01-31", "2020-02-15", 15},
		{"Both on 31st", "2020-01-31", "2020-03-31", 60},
		{"End on 31st from 30th", "2020-04-30", "2020-05-31", 30},
		{"End on 31st from mid month", "2020-04-15", "2020-05-31", 46},
		{"Leap February end to February end", "2012-02-29", "2013-02-28", 360},
		{"February end to 31st is not clamped", "2011-02-28", "2011-03-31", 31},
		{"Non February month end", "2011-04-30", "2011-06-30", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := us30360Days(date(tt.start), date(tt.end))
			if got != tt.expected {
				t.Errorf("us30360Days(%s, %s) = %v, expected %v", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestEU30360ClampsBothDays(t *testing.T) {
	tests := []struct {
		start    string
		end      string
		expected float64
	}{
		{"2011-02-28", "2011-03-31", 32},
		{"2020-01-31", "2020-03-31", 60},
		{"2020-01-30", "2020-02-29", 29},
	}

	for _, tt := range tests {
		got := eu30360Days(date(tt.start), date(tt.end))
		if got != tt.expected {
			t.Errorf("eu30360Days(%s, %s) = %v, expected %v", tt.start, tt.end, got, tt.expected)
		}
	}
}

func TestActActBasis(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected float64
	}{
		{"Same common year", "2011-01-01", "2011-06-01", 365},
		{"Same leap year", "2012-01-01", "2012-06-01", 366},
		{"Short span containing Feb 29", "2011-12-15", "2012-03-01", 366},
		{"Short span before Feb 29", "2011-12-15", "2012-02-28", 365},
		{"Short span ending on Feb 29", "2011-12-15", "2012-02-29", 366},
		{"Short span from leap year start", "2012-02-01", "2013-01-15", 366},
		{"Short span after leap day", "2012-03-01", "2013-02-28", 365},
		{"Multi-year average", "2011-06-01", "2013-06-01", (365.0 + 366 + 365) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, actActBasis(date(tt.start), date(tt.end)), delta)
		})
	}
}
