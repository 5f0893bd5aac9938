package sheet

import "errors"

var (
	// ErrMalformed marks formula text whose reference, range or sum syntax
	// cannot be parsed. The affected cell is left unchanged.
	ErrMalformed = errors.New("malformed formula")

	// ErrNonNumeric marks a finished, non-numeric cell found inside a summed
	// range. Its contribution is dropped from the sum.
	ErrNonNumeric = errors.New("non-numeric value in summed range")

	// ErrInvariant marks an aggregate that does not wrap a range.
	ErrInvariant = errors.New("aggregate does not wrap a range")

	// ErrUnresolved marks a cell that the ordered strategy left waiting on
	// other pending cells.
	ErrUnresolved = errors.New("unresolved dependency")

	// ErrOutOfBounds marks a position outside [0, MaxIndex) on either axis.
	ErrOutOfBounds = errors.New("position out of bounds")
)
