// Robust Delaunay and constrained Delaunay triangulation for Go.
//
// Build takes a set of points, optionally with edges that must appear in the
// result and a boundary polygon to trim to, and returns an immutable
// triangulation. Predicates are exact where it matters, so degenerate input
// (collinear, cocircular, and duplicate points) is handled deterministically
// instead of corrupting the mesh.
//
// For incremental construction, see the advanced package.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type VertexID = advanced.VertexID
type TriangleID = advanced.TriangleID
type Edge = advanced.Edge
type Triangulation = advanced.Triangulation
type Location = advanced.Location
type Option = advanced.Option
type ConfigurationError = advanced.ConfigurationError

const (
	DuplicateMerge  = advanced.DuplicateMerge
	DuplicateReject = advanced.DuplicateReject
	OrderSpatial    = advanced.OrderSpatial
	OrderInput      = advanced.OrderInput
)

var (
	ErrTooFewPoints         = advanced.ErrTooFewPoints
	ErrCollinearPoints      = advanced.ErrCollinearPoints
	ErrNonFinitePoint       = advanced.ErrNonFinitePoint
	ErrDuplicatePoint       = advanced.ErrDuplicatePoint
	ErrUnknownVertex        = advanced.ErrUnknownVertex
	ErrDegenerateConstraint = advanced.ErrDegenerateConstraint
	ErrCrossingConstraints  = advanced.ErrCrossingConstraints
	ErrMalformedBoundary    = advanced.ErrMalformedBoundary
	ErrOutsideHull          = advanced.ErrOutsideHull
)

var (
	WithTolerance       = advanced.WithTolerance
	WithDuplicatePolicy = advanced.WithDuplicatePolicy
	WithOrder           = advanced.WithOrder
	WithHoles           = advanced.WithHoles
	WithLogger          = advanced.WithLogger
)

// Triangulate the points. Each constraint edge will be an edge of the result,
// and if a boundary is given (as a ring of vertex ids, which are indices into
// points), only the triangles inside it are kept.
//
// Bad input gives a *ConfigurationError wrapping one of the Err values, and
// nothing is returned but the error.
func Build(points []Point, constraints []Edge, boundary []VertexID, options ...Option) (*Triangulation, error) {
	return advanced.Build(points, constraints, boundary, options...)
}

// Unconstrained Delaunay triangulation, returned as counterclockwise triples of
// indices into points.
func Triangulate(points ...Point) ([][3]VertexID, error) {
	result, err := Build(points, nil, nil)
	if err != nil {
		return nil, err
	}
	return result.Triangles(), nil
}

// Triangulate a simple polygon, given by indices into points in either
// winding, by ear clipping. A nil indices uses every point in order.
func EarClip(points []Point, indices []VertexID) ([][3]VertexID, error) {
	return advanced.EarClip(points, indices)
}

// Fan triangulation of a convex polygon.
func FanTriangulate(indices []VertexID) ([][3]VertexID, error) {
	return advanced.FanTriangulate(indices)
}
