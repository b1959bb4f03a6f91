package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLayout = errors.New("invalid maze layout")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// InvalidLayoutError reports a maze that cannot be turned into a grid.
// Row and Col locate the offending cell when one applies, -1 otherwise.
type InvalidLayoutError struct {
	Reason   string
	Row, Col int
}

// NewInvalidLayout builds a layout error without a location
func NewInvalidLayout(format string, args ...any) *InvalidLayoutError {
	return &InvalidLayoutError{Reason: fmt.Sprintf(format, args...), Row: -1, Col: -1}
}

// NewInvalidLayoutAt builds a layout error pinned to a cell
func NewInvalidLayoutAt(p Point, format string, args ...any) *InvalidLayoutError {
	return &InvalidLayoutError{Reason: fmt.Sprintf(format, args...), Row: p.Row, Col: p.Col}
}

func (e *InvalidLayoutError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidLayout, e.Reason)
	}
	return fmt.Sprintf("%v: %s at (%d,%d)", ErrInvalidLayout, e.Reason, e.Row, e.Col)
}

func (e *InvalidLayoutError) Is(target error) bool { return target == ErrInvalidLayout }

// OutOfBoundsError is returned by bounds-checked accessors.
// Seeing one after construction means a caller computed a bad coordinate.
type OutOfBoundsError struct {
	Point      Point
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d grid", ErrOutOfBounds, e.Point.Row, e.Point.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }
