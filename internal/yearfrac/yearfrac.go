// Package yearfrac defines the result of a configured calculation and
// includes functions for evaluating every calculation in a configuration.
package yearfrac

import (
	"fmt"
	"time"

	"github.com/iwvelando/yearfrac/internal/config"
	"github.com/iwvelando/yearfrac/pkg/daycount"
	"go.uber.org/zap"
)

// Result holds the outcome of one calculation.
type Result struct {
	Name       string              `json:"name"`
	Start      time.Time           `json:"-"`
	End        time.Time           `json:"-"`
	StartDate  string              `json:"startDate"`
	EndDate    string              `json:"endDate"`
	Convention daycount.Convention `json:"convention"`
	Signed     bool                `json:"signed"`
	ISDA       bool                `json:"isda,omitempty"`
	Value      float64             `json:"value"`
}

// Method names the rule used to compute Value.
func (r Result) Method() string {
	if r.ISDA {
		return r.Convention.String() + " isda"
	}
	return r.Convention.String()
}

// Evaluate computes the year fraction for a single parsed calculation.
func Evaluate(calc config.Calculation) Result {
	result := Result{
		Name:       calc.Name,
		Start:      calc.Start,
		End:        calc.End,
		StartDate:  calc.StartDate,
		EndDate:    calc.EndDate,
		Convention: calc.Basis,
		Signed:     calc.Signed,
		ISDA:       calc.ISDA,
	}

	switch {
	case calc.ISDA:
		result.Value = daycount.ActualActualISDA(calc.Start, calc.End)
		if calc.Signed && calc.Start.After(calc.End) {
			result.Value = -result.Value
		}
	case calc.Signed:
		result.Value = calc.Basis.YearFractionSigned(calc.Start, calc.End)
	default:
		result.Value = calc.Basis.YearFraction(calc.Start, calc.End)
	}
	return result
}

// GetYearFractions parses and evaluates every calculation in the
// configuration, in order.
func GetYearFractions(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(conf.Calculations))
	for i := range conf.Calculations {
		calc := conf.Calculations[i]
		if err := calc.Parse(conf.Defaults); err != nil {
			return results, err
		}

		result := Evaluate(calc)
		logger.Debug(fmt.Sprintf("computed year fraction for %s", calc.Name),
			zap.String("op", "yearfrac.GetYearFractions"),
			zap.String("convention", result.Method()),
			zap.String("start", calc.StartDate),
			zap.String("end", calc.EndDate),
			zap.Float64("value", result.Value),
		)
		results = append(results, result)
	}
	return results, nil
}
