// Lower level access to the triangulation: an incremental Builder, the mesh
// types, the predicates, and the options shared with the delaunay package.
package advanced

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type VertexID = internal.VertexID
type TriangleID = internal.TriangleID
type Edge = internal.Edge
type Triangle = internal.Triangle
type Mesh = internal.Mesh

type Builder = internal.Builder
type Triangulation = internal.Triangulation
type Location = internal.Location
type LocationKind = internal.LocationKind

type Options = internal.Options
type Option = internal.Option
type DuplicatePolicy = internal.DuplicatePolicy
type InsertionOrder = internal.InsertionOrder

type Predicates = internal.Predicates
type AdaptivePredicates = internal.AdaptivePredicates
type ExactPredicates = internal.ExactPredicates
type Orientation = internal.Orientation
type CircleRelation = internal.CircleRelation

type ConfigurationError = internal.ConfigurationError
type InvariantViolation = internal.InvariantViolation
type Degeneracy = internal.Degeneracy
type DegeneracyStats = internal.DegeneracyStats

const NoTriangle = internal.NoTriangle

const (
	InTriangle  = internal.InTriangle
	OnEdge      = internal.OnEdge
	OnVertex    = internal.OnVertex
	OutsideHull = internal.OutsideHull
)

const (
	DuplicateMerge  = internal.DuplicateMerge
	DuplicateReject = internal.DuplicateReject
	OrderSpatial    = internal.OrderSpatial
	OrderInput      = internal.OrderInput
)

const (
	Right     = internal.Right
	Collinear = internal.Collinear
	Left      = internal.Left
	Outside   = internal.Outside
	OnCircle  = internal.OnCircle
	Inside    = internal.Inside
)

const (
	DegeneracyDuplicate           = internal.DegeneracyDuplicate
	DegeneracyCocircular          = internal.DegeneracyCocircular
	DegeneracyOnEdge              = internal.DegeneracyOnEdge
	DegeneracyCollinearConstraint = internal.DegeneracyCollinearConstraint
)

var (
	ErrTooFewPoints         = internal.ErrTooFewPoints
	ErrCollinearPoints      = internal.ErrCollinearPoints
	ErrNonFinitePoint       = internal.ErrNonFinitePoint
	ErrDuplicatePoint       = internal.ErrDuplicatePoint
	ErrUnknownVertex        = internal.ErrUnknownVertex
	ErrDegenerateConstraint = internal.ErrDegenerateConstraint
	ErrCrossingConstraints  = internal.ErrCrossingConstraints
	ErrMalformedBoundary    = internal.ErrMalformedBoundary
	ErrOutsideHull          = internal.ErrOutsideHull
	ErrNotEnoughIndices     = internal.ErrNotEnoughIndices
	ErrSelfIntersecting     = internal.ErrSelfIntersecting
	ErrIndexOutOfRange      = internal.ErrIndexOutOfRange
)

var (
	NewBuilder     = internal.NewBuilder
	Build          = internal.Build
	EarClip        = internal.EarClip
	FanTriangulate = internal.FanTriangulate

	WithTolerance       = internal.WithTolerance
	WithDuplicatePolicy = internal.WithDuplicatePolicy
	WithOrder           = internal.WithOrder
	WithPredicates      = internal.WithPredicates
	WithHoles           = internal.WithHoles
	WithLogger          = internal.WithLogger
)

func HandleTriangulatePanicRecover(r interface{}) error {
	return internal.HandleTriangulatePanicRecover(r)
}
