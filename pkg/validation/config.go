package validation

import (
	"fmt"

	"github.com/iwvelando/yearfrac/pkg/datetime"
)

// CalculationConfig is the subset of a configured calculation needed for
// validation.
type CalculationConfig struct {
	Name      string
	StartDate string
	EndDate   string
	Signed    bool
}

// ValidateDateOrder warns when an unsigned calculation lists its dates in
// reverse; the result is still computed but the sign is lost.
func ValidateDateOrder(name, startDate, endDate string, signed bool) (string, error) {
	if signed {
		return "", nil
	}
	reversed, err := datetime.DateBeforeDate(endDate, startDate)
	if err != nil {
		return "", err
	}
	if reversed {
		return fmt.Sprintf("Calculation '%s' ends before it starts (%s < %s) - unsigned result drops the direction",
			name, endDate, startDate), nil
	}
	return "", nil
}

// ValidateCalculations checks names and date ordering across all
// calculations and returns warnings. Unparseable dates are reported as
// warnings here and as errors when the calculations are evaluated.
func ValidateCalculations(calculations []CalculationConfig) []string {
	var warnings []string
	seen := make(map[string]int, len(calculations))

	for i, calc := range calculations {
		if calc.Name == "" {
			warnings = append(warnings, fmt.Sprintf("Calculation #%d has no name", i+1))
		} else {
			if first, ok := seen[calc.Name]; ok {
				warnings = append(warnings, fmt.Sprintf("Calculation '%s' is defined more than once (#%d and #%d)",
					calc.Name, first+1, i+1))
			} else {
				seen[calc.Name] = i
			}
		}

		warning, err := ValidateDateOrder(calc.Name, calc.StartDate, calc.EndDate, calc.Signed)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' has an invalid date: %v", calc.Name, err))
			continue
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}
