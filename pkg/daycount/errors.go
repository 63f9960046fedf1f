package daycount

import (
	"errors"
	"fmt"
)

// ErrInvalidConvention is matched by every error returned when a convention
// cannot be constructed.
var ErrInvalidConvention = errors.New("invalid day count convention")

// InvalidConventionError carries the rejected code or name.
type InvalidConventionError struct {
	Value string
}

func (e *InvalidConventionError) Error() string {
	return fmt.Sprintf("%s %q: expected one of nasd360, act/act, act360, act365, eur360 or a code in the range 0-4",
		ErrInvalidConvention, e.Value)
}

func (e *InvalidConventionError) Unwrap() error {
	return ErrInvalidConvention
}
