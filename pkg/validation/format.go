// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/yearfrac/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidatePrecision checks that a decimal precision is printable by fmt.
func ValidatePrecision(precision int) error {
	if precision < 0 || precision > 17 {
		return fmt.Errorf("expected precision between 0 and 17, got %d", precision)
	}
	return nil
}
