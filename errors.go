package dispergo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no points are supplied.
	ErrEmptyInput = errors.New("no points supplied")

	// ErrUnsolvable is returned when no threshold admits a selection of
	// the requested size. It is a regular outcome of calibration, not a
	// fault: with duplicates among the points it can be impossible to
	// keep every selected pair at a strictly positive distance.
	ErrUnsolvable = errors.New("no feasible selection exists")
)

// ErrInvalidPlacements indicates a placement count outside [1, points].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPlacements struct {
	Placements int
	Points     int
	cause      error
}

func (e *ErrInvalidPlacements) Error() string {
	return fmt.Sprintf("invalid placements: %d (points: %d)", e.Placements, e.Points)
}

func (e *ErrInvalidPlacements) Unwrap() error { return e.cause }
