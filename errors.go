package arraytex

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDimension         = errors.New("too many dimensions")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidFormat     = errors.New("invalid number format")
	ErrUnsupportedEnv    = errors.New("unsupported environment")
	ErrRagged            = errors.New("ragged rows")
	ErrShape             = errors.New("invalid shape")
	ErrCopy              = errors.New("copy failed")
)

// DimensionError is returned when an array has more than two dimensions.
type DimensionError struct {
	Rank int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: array has %d dimensions, at most 2 are supported", ErrDimension, e.Rank)
}

// Is reports whether target is [ErrDimension].
func (e *DimensionError) Is(target error) bool { return target == ErrDimension }

// DimensionMismatchError is returned when a metadata sequence disagrees in
// length with the column or row count derived from the array.
type DimensionMismatchError struct {
	Field string // "alignment", "column_names" or "row_index"
	Got   int
	Want  int
	Unit  string // "columns" or "rows"
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("number of `%s` items (%d) doesn't match number of %s (%d)", e.Field, e.Got, e.Unit, e.Want)
}

// Is reports whether target is [ErrDimensionMismatch].
func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

func columnMismatch(field string, got, want int) error {
	return &DimensionMismatchError{Field: field, Got: got, Want: want, Unit: "columns"}
}

// FormatError is returned when a number format specifier cannot be parsed or
// cannot be applied to the array's element kind.
type FormatError struct {
	Spec   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidFormat, e.Spec, e.Reason)
}

// Unwrap returns [ErrInvalidFormat].
func (e *FormatError) Unwrap() error { return ErrInvalidFormat }
