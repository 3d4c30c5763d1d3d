package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// What to do when a point coincides with an existing vertex.
type DuplicatePolicy int

const (
	// Keep the existing vertex and report its id
	DuplicateMerge DuplicatePolicy = iota
	// Fail with ErrDuplicatePoint
	DuplicateReject
)

// The order in which Build inserts points.
type InsertionOrder int

const (
	// Outward from the center of the bounding box, ties broken by x then y. This
	// keeps the walk short, and the result doesn't depend on the input order.
	OrderSpatial InsertionOrder = iota
	// As given
	OrderInput
)

type Options struct {
	// Points within this distance of an existing vertex are duplicates. Zero
	// means only exact coincidence.
	Tolerance  float64
	Duplicates DuplicatePolicy
	Order      InsertionOrder
	Predicates Predicates
	// Hole rings for Build. Only used with a boundary, or on their own to cut
	// holes out of the hull.
	Holes  [][]VertexID
	Logger logrus.FieldLogger
}

type Option func(*Options)

func WithTolerance(tolerance float64) Option {
	return func(o *Options) {
		o.Tolerance = tolerance
	}
}

func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(o *Options) {
		o.Duplicates = policy
	}
}

func WithOrder(order InsertionOrder) Option {
	return func(o *Options) {
		o.Order = order
	}
}

func WithPredicates(predicates Predicates) Option {
	return func(o *Options) {
		o.Predicates = predicates
	}
}

func WithHoles(holes ...[]VertexID) Option {
	return func(o *Options) {
		o.Holes = append(o.Holes, holes...)
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func NewOptions(options ...Option) Options {
	o := Options{Predicates: AdaptivePredicates{}}
	for _, option := range options {
		option(&o)
	}
	if o.Predicates == nil {
		o.Predicates = AdaptivePredicates{}
	}
	if o.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		o.Logger = logger
	}
	if o.Tolerance < 0 {
		o.Tolerance = 0
	}
	return o
}
