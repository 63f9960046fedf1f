// Package daycount computes year fractions between two dates under the five
// spreadsheet day-count conventions (YEARFRAC bases 0 through 4).
package daycount

import (
	"strconv"
	"strings"
)

// Convention selects a day-count convention. The zero value is US30360,
// matching YEARFRAC's default basis.
type Convention int

// Supported conventions. The numeric values are the YEARFRAC basis codes.
const (
	US30360 Convention = iota
	ActAct
	Act360
	Act365
	EU30360
)

var canonicalNames = [...]string{
	US30360: "nasd360",
	ActAct:  "act/act",
	Act360:  "act360",
	Act365:  "act365",
	EU30360: "eur360",
}

var aliases = map[Convention][]string{
	US30360: {"nasd30/360", "30/360", "us30360"},
	ActAct:  {"actact"},
	Act360:  {"act/360"},
	EU30360: {"eur30/360", "30e/360"},
}

var byName = func() map[string]Convention {
	names := make(map[string]Convention, len(canonicalNames)*2)
	for c, name := range canonicalNames {
		names[name] = Convention(c)
	}
	for c, list := range aliases {
		for _, alias := range list {
			names[alias] = c
		}
	}
	return names
}()

// Conventions returns every supported convention ordered by code.
func Conventions() []Convention {
	return []Convention{US30360, ActAct, Act360, Act365, EU30360}
}

// FromCode returns the convention for a YEARFRAC basis code (0-4).
func FromCode(code int) (Convention, error) {
	c := Convention(code)
	if !c.Valid() {
		return 0, &InvalidConventionError{Value: strconv.Itoa(code)}
	}
	return c, nil
}

// FromName returns the convention for a canonical name or alias. Matching is
// case-insensitive and ignores surrounding whitespace.
func FromName(name string) (Convention, error) {
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &InvalidConventionError{Value: name}
	}
	return c, nil
}

// Parse accepts either a convention name or its decimal code.
func Parse(value string) (Convention, error) {
	trimmed := strings.TrimSpace(value)
	if code, err := strconv.Atoi(trimmed); err == nil {
		return FromCode(code)
	}
	return FromName(trimmed)
}

// Valid reports whether c is one of the five supported conventions.
func (c Convention) Valid() bool {
	return c >= US30360 && c <= EU30360
}

// Code returns the YEARFRAC basis code.
func (c Convention) Code() int {
	return int(c)
}

// String returns the canonical lowercase name.
func (c Convention) String() string {
	if !c.Valid() {
		return "Convention(" + strconv.Itoa(int(c)) + ")"
	}
	return canonicalNames[c]
}

// Aliases returns the alternative names accepted by FromName.
func (c Convention) Aliases() []string {
	return append([]string(nil), aliases[c]...)
}

// MarshalText encodes the canonical name.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &InvalidConventionError{Value: strconv.Itoa(int(c))}
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a name, alias or code.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
