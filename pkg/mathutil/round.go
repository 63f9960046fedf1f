// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/yearfrac/pkg/constants"
)

// RoundTo rounds a value to the given number of decimal places. Negative
// precision is treated as zero.
func RoundTo(val float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// MatchesSpreadsheet reports whether a year fraction agrees with a reference
// value to the precision spreadsheet YEARFRAC results are quoted at.
func MatchesSpreadsheet(got, reference float64) bool {
	return WithinTolerance(got, reference, constants.YearFractionTolerance)
}
