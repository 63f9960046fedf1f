package integration

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/iwvelando/yearfrac/internal/config"
	"github.com/iwvelando/yearfrac/internal/yearfrac"
	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/output"
	"github.com/iwvelando/yearfrac/pkg/testutil"
	"go.uber.org/zap"
)

const exampleConfig = "../../config.yaml.example"

func loadExample(t *testing.T) []yearfrac.Result {
	t.Helper()

	conf, err := config.LoadConfiguration(exampleConfig)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("unexpected configuration warnings: %v", warnings)
	}

	results, err := yearfrac.GetYearFractions(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("GetYearFractions() error = %v", err)
	}
	return results
}

// TestExampleConfigurationBaseline evaluates the shipped example exactly as
// the run command does and checks every value against spreadsheet output.
func TestExampleConfigurationBaseline(t *testing.T) {
	results := loadExample(t)

	baseline := []struct {
		name       string
		convention string
		expected   float64
	}{
		{"bond accrual (US 30/360)", "nasd360", 42.21388888889},
		{"bond accrual (Actual/Actual)", "act/act", 42.21424933147},
		{"bond accrual (Actual/Actual ISDA)", "act/act isda", 42.21541283030},
		{"money market (Actual/360)", "act360", 28.78888888889},
		{"sterling deposit (Actual/365)", "act365", 28.39452054795},
		{"eurobond (European 30/360)", "eur360", 28.37777777778},
		{"backdated accrual", "nasd360", -42.21388888889},
	}

	if len(results) != len(baseline) {
		t.Fatalf("Expected %d results, got %d", len(baseline), len(results))
	}

	for i, check := range baseline {
		if results[i].Name != check.name {
			t.Errorf("Expected calculation %s at position %d, got %s", check.name, i, results[i].Name)
		}
		result := testutil.FindResult(results, check.name)
		if result == nil {
			t.Errorf("Calculation '%s' not found in results", check.name)
			continue
		}
		if result.Method() != check.convention {
			t.Errorf("%s: expected convention %s, got %s", check.name, check.convention, result.Method())
		}
		testutil.AssertYearFraction(t, check.name, result.Value, check.expected)
	}
}

// TestCSVOutputFormat checks the CSV rendering of the example configuration.
func TestCSVOutputFormat(t *testing.T) {
	results := loadExample(t)

	var buf bytes.Buffer
	if err := output.CsvFormat(&buf, results, constants.DefaultPrecision); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Could not parse CSV output: %v", err)
	}
	if len(records) != len(results)+1 {
		t.Fatalf("Expected %d CSV records, got %d", len(results)+1, len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "name,start,end,convention,signed,year fraction" {
		t.Errorf("Unexpected CSV header: %s", header)
	}

	last := records[len(records)-1]
	if last[4] != "true" || last[5] != "-42.21388888889" {
		t.Errorf("Unexpected signed record: %v", last)
	}
}

// TestPrettyOutputFormat checks the pretty rendering of the example configuration.
func TestPrettyOutputFormat(t *testing.T) {
	results := loadExample(t)

	var buf bytes.Buffer
	if err := output.PrettyFormat(&buf, results, constants.DefaultPrecision); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	pretty := buf.String()

	for _, want := range []string{"Year Fraction", "eurobond (European 30/360)", "28.39452054795", "act/act isda"} {
		if !strings.Contains(pretty, want) {
			t.Errorf("Pretty output missing %q:\n%s", want, pretty)
		}
	}
}
