package overpunch

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("overpunch")

var (
	// ErrEmptyField is returned when decoding a zero length field.
	ErrEmptyField = Error.New("cannot extract from an empty field")

	// ErrScaleRange is returned when the number of decimal places is
	// negative or larger than the decimal type can carry.
	ErrScaleRange = Error.New("decimal places out of range")
)

// ParseError reports a field that could not be read as a signed overpunch
// number.
//
// Err is set when the digits were well formed but rejected by the decimal
// parser.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse result as decimal: %q: %v", e.Input, e.Err)
	}

	return fmt.Sprintf("failed to parse result as decimal: %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OverflowError reports a value whose scaled magnitude does not fit the
// encoder's working integer.
type OverflowError struct {
	Value string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("failed with overflow while serializing value: %s", e.Value)
}
