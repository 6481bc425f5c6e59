// Package errors defines the failure taxonomy for climate record parsing.
// Every failed parse yields exactly one *ParseError whose Kind names the
// step that rejected the input.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies which parsing step failed.
type Kind int

const (
	// Empty means the input had zero length.
	Empty Kind = iota + 1
	// WrongFieldCount means the input did not split into exactly three fields.
	WrongFieldCount
	// MissingIdentifier means the city field was empty.
	MissingIdentifier
	// InvalidYear means the year field is not a valid unsigned 32-bit integer.
	InvalidYear
	// InvalidMeasurement means the temperature field is not a valid float.
	InvalidMeasurement
)

// String returns a stable label for the kind, suitable for metric labels.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case WrongFieldCount:
		return "wrong_field_count"
	case MissingIdentifier:
		return "missing_identifier"
	case InvalidYear:
		return "invalid_year"
	case InvalidMeasurement:
		return "invalid_measurement"
	default:
		return "unknown"
	}
}

// ParseError reports why a record could not be parsed.
// Err holds the strconv failure for InvalidYear and InvalidMeasurement
// and is nil for the structural kinds.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case Empty:
		return "empty input"
	case WrongFieldCount:
		return "incorrect number of fields"
	case MissingIdentifier:
		return "no city name"
	case InvalidYear:
		// The cause is kept for Unwrap but deliberately left out of the text.
		return "error parsing year: invalid digit found in string"
	case InvalidMeasurement:
		if e.Err == nil {
			return "error parsing temperature"
		}
		return fmt.Sprintf("error parsing temperature: %v", e.Err)
	default:
		return "unhandled error!"
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParseError of the same kind, so that the
// sentinels below match wrapped errors through errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New returns a ParseError of the given kind with no underlying cause.
func New(kind Kind) *ParseError {
	return &ParseError{Kind: kind}
}

// WrapYear wraps a failure from converting the year field.
func WrapYear(err error) *ParseError {
	return &ParseError{Kind: InvalidYear, Err: err}
}

// WrapMeasurement wraps a failure from converting the temperature field.
func WrapMeasurement(err error) *ParseError {
	return &ParseError{Kind: InvalidMeasurement, Err: err}
}

// KindOf returns the Kind of the first *ParseError in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if !stderrors.As(err, &pe) {
		return 0, false
	}
	return pe.Kind, true
}

// Sentinels for use with errors.Is.
var (
	ErrEmpty              = New(Empty)
	ErrWrongFieldCount    = New(WrongFieldCount)
	ErrMissingIdentifier  = New(MissingIdentifier)
	ErrInvalidYear        = New(InvalidYear)
	ErrInvalidMeasurement = New(InvalidMeasurement)
)
