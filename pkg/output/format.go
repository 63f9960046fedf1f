// Package output provides utilities for formatting and displaying year
// fraction results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/yearfrac/internal/yearfrac"
	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders results in the named format.
func Write(w io.Writer, format string, results []yearfrac.Result, precision int) error {
	switch format {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, results, precision)
	case constants.OutputFormatCSV:
		return CsvFormat(w, results, precision)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results, precision)
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []yearfrac.Result, precision int) error {
	p := message.NewPrinter(language.English)
	nameWidth := len("Name")
	for _, r := range results {
		nameWidth = max(nameWidth, len(r.Name))
	}

	if _, err := fmt.Fprintf(w, "%-*s | Start      | End        | Convention   | Year Fraction\n", nameWidth, "Name"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-*s | __________ | __________ | ____________ | _____________\n", nameWidth, "____"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := p.Fprintf(w, "%-*s | %s | %s | %-12s | %.*f\n",
			nameWidth, r.Name, r.StartDate, r.EndDate, r.Method(), precision, mathutil.RoundTo(r.Value, precision)); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, results []yearfrac.Result, precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "start", "end", "convention", "signed", "year fraction"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Name,
			r.StartDate,
			r.EndDate,
			r.Method(),
			strconv.FormatBool(r.Signed),
			strconv.FormatFloat(mathutil.RoundTo(r.Value, precision), 'f', precision, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs results as an indented JSON array with values rounded to
// the given precision.
func JSONFormat(w io.Writer, results []yearfrac.Result, precision int) error {
	rounded := make([]yearfrac.Result, len(results))
	for i, r := range results {
		r.Value = mathutil.RoundTo(r.Value, precision)
		rounded[i] = r
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rounded)
}
