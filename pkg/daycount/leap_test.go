package daycount

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2020, true},
		{1600, true},
		{2000, true},
		{2024, true},
		{0, true},
		{-4, true},
		{1978, false},
		{1900, false},
		{2100, false},
		{2023, false},
		{-100, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.expected {
			t.Errorf("IsLeapYear(%d) = %v, expected %v", tt.year, got, tt.expected)
		}
	}
}

func TestIsEndOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		day      int
		month    time.Month
		year     int
		expected bool
	}{
		{"February common year", 28, time.February, 1978, true},
		{"February 28 in leap year", 28, time.February, 2020, false},
		{"February 29 in leap year", 29, time.February, 2020, true},
		{"February 1900", 28, time.February, 1900, true},
		{"Thirty day month", 30, time.April, 2021, true},
		{"Thirty one day month on 30th", 30, time.May, 2021, false},
		{"Thirty one day month", 31, time.December, 2021, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEndOfMonth(tt.day, tt.month, tt.year); got != tt.expected {
				t.Errorf("IsEndOfMonth(%d, %v, %d) = %v, expected %v", tt.day, tt.month, tt.year, got, tt.expected)
			}
		})
	}
}
