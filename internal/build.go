package internal

import (
	"github.com/sirupsen/logrus"
)

// Triangulate points, forcing the constraint edges into the result. If a
// boundary ring is given, only the triangles inside it are kept. Holes are
// given with WithHoles.
//
// All input is checked before construction starts, and a bad input gives a
// *ConfigurationError. Points within the tolerance of an earlier point are
// merged into it; constraints and rings may refer to either id.
func Build(points []Point, constraints []Edge, boundary []VertexID, options ...Option) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	opts := NewOptions(options...)
	log := opts.Logger

	for i, p := range points {
		if !IsFinite(p) {
			return nil, configErrorf(ErrNonFinitePoint, "point %d is (%g, %g)", i, p.X, p.Y)
		}
	}

	canonical, vertexIndex := dedupPoints(points, opts.Tolerance)
	var unique []VertexID
	for i, c := range canonical {
		if c == VertexID(i) {
			unique = append(unique, c)
		} else if opts.Duplicates == DuplicateReject {
			return nil, configErrorf(ErrDuplicatePoint, "point %d coincides with point %d", i, c)
		}
	}
	if merged := len(points) - len(unique); merged > 0 {
		log.WithField("merged", merged).Debug("merged duplicate points")
	}
	if len(unique) < 3 {
		return nil, configErrorf(ErrTooFewPoints, "%d distinct points", len(unique))
	}
	if allCollinear(points, unique, opts.Predicates) {
		return nil, configErrorf(ErrCollinearPoints, "%d distinct points on one line", len(unique))
	}

	edges := make([]Edge, 0, len(constraints))
	seen := make(map[Edge]bool, len(constraints))
	for _, e := range constraints {
		for _, v := range []VertexID{e.A, e.B} {
			if v < 0 || int(v) >= len(points) {
				return nil, configErrorf(ErrUnknownVertex, "constraint vertex %d is outside of vertex list of length %d", v, len(points))
			}
		}
		mapped := Edge{canonical[e.A], canonical[e.B]}
		if mapped.A == mapped.B {
			return nil, configErrorf(ErrDegenerateConstraint, "constraint %s has no length", edgeString(e.A, e.B))
		}
		if !seen[mapped.Key()] {
			seen[mapped.Key()] = true
			edges = append(edges, mapped)
		}
	}

	var rings [][]VertexID
	if boundary != nil {
		rings = append(rings, boundary)
	}
	rings = append(rings, opts.Holes...)
	for i, ring := range rings {
		cleaned, err := cleanRing(ring, canonical, len(points))
		if err != nil {
			return nil, err
		}
		if err := checkRing(points, cleaned, opts.Predicates); err != nil {
			return nil, err
		}
		rings[i] = cleaned
	}

	segments := append(constraintSegments(edges), ringSegments(rings)...)
	if err := checkCrossings(points, segments, vertexIndex, opts.Predicates); err != nil {
		return nil, err
	}

	// Everything past here works on a private builder, so a failure can't leave
	// anything half built.
	center := boundsCenter(points, unique)
	b := newBuilder(center, opts)
	for _, p := range points {
		b.mesh.AddPoint(p)
	}
	for _, v := range insertionOrder(opts.Order, points, unique, center) {
		got, err := b.insertRegistered(v)
		if err != nil {
			return nil, err
		}
		if got != v {
			fatalf("point %d merged into %d after deduplication", v, got)
		}
	}
	for _, e := range edges {
		if _, err := b.constrain(e.A, e.B); err != nil {
			return nil, err
		}
	}

	result, err = b.finalize(rings, boundary != nil, canonical)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"points":      len(points),
		"vertices":    len(unique),
		"constraints": len(edges),
		"triangles":   result.Len(),
		"degeneracy":  b.stats,
	}).Info("built triangulation")
	return result, nil
}
