package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned when a coordinate lies outside [0,n)×[0,n).
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIndexOutOfRange is returned by Row for an index outside [0,n).
	// Errors of this kind also match ErrInvalidCoordinate.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSizeMismatch is returned by binary operations on grids of different sizes.
	ErrSizeMismatch = errors.New("grid sizes do not match")

	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrMalformed is returned by Parse for text that is not a square grid drawing.
	ErrMalformed = errors.New("malformed grid text")
)

// CoordinateError reports a coordinate that does not fit a grid of size N.
type CoordinateError struct {
	Coord Coord
	N     int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: %v outside [0,%d)x[0,%d)", ErrInvalidCoordinate, e.Coord, e.N, e.N)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// IndexError reports a row index that does not fit a grid of size N.
type IndexError struct {
	Index int
	N     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: row %d outside [0,%d)", ErrIndexOutOfRange, e.Index, e.N)
}

func (e *IndexError) Unwrap() []error { return []error{ErrIndexOutOfRange, ErrInvalidCoordinate} }

// SizeMismatchError reports the operand sizes of a rejected binary operation.
type SizeMismatchError struct {
	Op          string
	Left, Right int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %d != %d", e.Op, ErrSizeMismatch, e.Left, e.Right)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
