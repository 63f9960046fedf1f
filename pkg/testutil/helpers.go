// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/yearfrac/internal/yearfrac"
	"github.com/iwvelando/yearfrac/pkg/mathutil"
)

// FindResult finds a result by calculation name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []yearfrac.Result, name string) *yearfrac.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// AssertYearFraction fails the test unless got agrees with the spreadsheet
// reference value.
func AssertYearFraction(t testing.TB, name string, got, reference float64) {
	t.Helper()
	if !mathutil.MatchesSpreadsheet(got, reference) {
		t.Errorf("%s: expected %.11f, got %.11f", name, reference, got)
	}
}

// WriteConfig writes contents to a config file in a fresh temporary
// directory and returns its path.
func WriteConfig(t testing.TB, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
