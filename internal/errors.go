package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTooFewPoints         = errors.New("fewer than 3 distinct points")
	ErrCollinearPoints      = errors.New("all points are collinear")
	ErrNonFinitePoint       = errors.New("point has a non-finite coordinate")
	ErrDuplicatePoint       = errors.New("duplicate point")
	ErrUnknownVertex        = errors.New("unknown vertex")
	ErrDegenerateConstraint = errors.New("degenerate constraint")
	ErrCrossingConstraints  = errors.New("constraints cross")
	ErrMalformedBoundary    = errors.New("malformed boundary")
	ErrOutsideHull          = errors.New("point is outside the triangulation")
)

// Returned when the input violates a precondition. Nothing has been mutated
// when one of these is returned.
type ConfigurationError struct {
	Err    error
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Support for errors.Cause
func (e *ConfigurationError) Cause() error {
	return e.Err
}

func configErrorf(sentinel error, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// Degenerate configurations which are resolved by policy rather than reported.
type Degeneracy int

const (
	// A point coincided with an existing vertex
	DegeneracyDuplicate Degeneracy = iota
	// Exact tie in the circumcircle test
	DegeneracyCocircular
	// A point landed exactly on an edge
	DegeneracyOnEdge
	// A constraint passed exactly through a vertex
	DegeneracyCollinearConstraint
)

func (d Degeneracy) String() string {
	switch d {
	case DegeneracyDuplicate:
		return "duplicate"
	case DegeneracyCocircular:
		return "cocircular"
	case DegeneracyOnEdge:
		return "on-edge"
	case DegeneracyCollinearConstraint:
		return "collinear-constraint"
	}
	return fmt.Sprintf("Degeneracy(%d)", int(d))
}

// Counts of degeneracies handled during construction.
type DegeneracyStats map[Degeneracy]int

func edgeString(a, b VertexID) string {
	return fmt.Sprintf("%d-%d", a, b)
}
