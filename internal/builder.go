package internal

import (
	"github.com/peterstace/simplefeatures/rtree"
	"github.com/sirupsen/logrus"
)

// Incremental construction of a constrained Delaunay triangulation. Points are
// inserted one at a time, constraints can be added between inserted vertices
// at any point, and Finalize takes an immutable snapshot.
//
// A Builder is owned by one goroutine at a time. Distinct builders share
// nothing.
type Builder struct {
	mesh  *Mesh
	opts  Options
	log   logrus.FieldLogger
	hint  TriangleID
	stats DegeneracyStats
	// Inserted vertices, for duplicate search within the tolerance
	index *rtree.RTree
	// Set when an invariant violation has left the mesh unusable
	err error
}

// Create a builder whose super-triangle is centered on origin. Any finite
// origin works, but one near the points keeps the arithmetic cheap.
func NewBuilder(origin Point, options ...Option) *Builder {
	return newBuilder(origin, NewOptions(options...))
}

func newBuilder(origin Point, opts Options) *Builder {
	if !IsFinite(origin) {
		origin = Point{}
	}
	return &Builder{
		mesh:  NewMesh(origin, opts.Predicates),
		opts:  opts,
		log:   opts.Logger,
		hint:  NoTriangle,
		stats: make(DegeneracyStats),
		index: &rtree.RTree{},
	}
}

func (b *Builder) recoverInvariant(err *error) {
	if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
		b.err = recoveredErr
		b.log.WithError(recoveredErr).Error("triangulation is corrupt")
		*err = recoveredErr
	}
}

// Insert a point, returning its vertex id. A point coinciding with an existing
// vertex (within the tolerance) returns that vertex's id and leaves the mesh
// unchanged, or fails with ErrDuplicatePoint under DuplicateReject.
func (b *Builder) Insert(p Point) (id VertexID, err error) {
	defer b.recoverInvariant(&err)
	if b.err != nil {
		return -1, b.err
	}
	if !IsFinite(p) {
		return -1, configErrorf(ErrNonFinitePoint, "(%g, %g)", p.X, p.Y)
	}

	v := b.mesh.AddPoint(p)
	got, err := b.insertRegistered(v)
	if err != nil || got != v {
		b.mesh.dropLastPoint()
	}
	if err != nil {
		return -1, err
	}
	return got, nil
}

// Insert a vertex that has already been given an id.
func (b *Builder) insertRegistered(v VertexID) (VertexID, error) {
	p := b.mesh.points[v]
	loc := b.mesh.Locate(p, b.hint)
	if loc.Kind == OutsideHull {
		fatalf("point %d (%g, %g) is outside the super-triangle", v, p.X, p.Y)
	}

	if existing, ok := b.findDuplicate(p, loc); ok {
		b.stats[DegeneracyDuplicate]++
		fields := logrus.Fields{"vertex": v, "existing": existing, "x": p.X, "y": p.Y}
		if b.opts.Duplicates == DuplicateReject {
			b.log.WithFields(fields).Debug("rejected duplicate point")
			return existing, configErrorf(ErrDuplicatePoint, "(%g, %g) coincides with vertex %d", p.X, p.Y, existing)
		}
		b.log.WithFields(fields).Debug("merged duplicate point")
		return existing, nil
	}

	var created []TriangleID
	if loc.Kind == OnEdge {
		b.stats[DegeneracyOnEdge]++
		created = b.mesh.splitEdge(loc.Triangle, loc.Edge, v)
	} else {
		created = b.mesh.splitTriangle(loc.Triangle, v)
	}
	flips, ties := b.mesh.legalize(v, created)
	b.stats[DegeneracyCocircular] += ties
	b.hint = created[len(created)-1]
	if b.opts.Tolerance > 0 {
		b.index.Insert(pointBox(p, 0), int(v))
	}

	b.log.WithFields(logrus.Fields{
		"vertex":   v,
		"x":        p.X,
		"y":        p.Y,
		"location": loc.Kind,
		"flips":    flips,
	}).Debug("inserted vertex")
	return v, nil
}

// An existing vertex the point coincides with, if any. Within a tolerance, the
// nearest inserted vertex wins, then the lowest id.
func (b *Builder) findDuplicate(p Point, loc Location) (VertexID, bool) {
	if loc.Kind == OnVertex {
		return loc.Vertex, true
	}
	tolerance := b.opts.Tolerance
	if tolerance <= 0 {
		return -1, false
	}

	best := VertexID(-1)
	bestDist := tolerance * tolerance
	_ = b.index.RangeSearch(pointBox(p, tolerance), func(id int) error {
		v := VertexID(id)
		d := dist2(p, b.mesh.points[v])
		if d > tolerance*tolerance {
			return nil
		}
		if best < 0 || d < bestDist || (d == bestDist && v < best) {
			best = v
			bestDist = d
		}
		return nil
	})
	return best, best >= 0
}

// Force the edge a-b into the triangulation. Later insertions keep it, and a
// point inserted exactly on it splits it into two constrained edges.
func (b *Builder) AddConstraint(a, c VertexID) (err error) {
	defer b.recoverInvariant(&err)
	if b.err != nil {
		return b.err
	}
	pieces, err := b.mesh.planConstraint(a, c)
	if err != nil {
		return err
	}
	b.applyConstraint(pieces)
	return nil
}

func (b *Builder) applyConstraint(pieces []constraintPiece) []Edge {
	edges := make([]Edge, 0, len(pieces))
	for _, piece := range pieces {
		b.mesh.enforcePiece(piece)
		edges = append(edges, Edge{piece.a, piece.b})
		b.log.WithFields(logrus.Fields{
			"a":       piece.a,
			"b":       piece.b,
			"crossed": len(piece.crossed),
		}).Debug("recovered constraint")
	}
	b.stats[DegeneracyCollinearConstraint] += len(pieces) - 1
	return edges
}

// Plan and recover a constraint in one go. Only used when the input has
// already been validated.
func (b *Builder) constrain(a, c VertexID) ([]Edge, error) {
	pieces, err := b.mesh.planConstraint(a, c)
	if err != nil {
		return nil, err
	}
	return b.applyConstraint(pieces), nil
}

// Where a point lies in the current mesh, super-triangle included.
func (b *Builder) Locate(p Point) Location {
	return b.mesh.Locate(p, b.hint)
}

// Number of vertices inserted so far.
func (b *Builder) NumVertices() int {
	count := 0
	for _, t := range b.mesh.incident {
		if t != NoTriangle {
			count++
		}
	}
	return count
}

// Number of triangles not touching the super-triangle.
func (b *Builder) Len() int {
	count := 0
	for i := range b.mesh.triangles {
		tri := &b.mesh.triangles[i]
		if tri.live && !tri.IsAuxiliary() {
			count++
		}
	}
	return count
}

// Copy of the degeneracy counters.
func (b *Builder) Stats() DegeneracyStats {
	result := make(DegeneracyStats, len(b.stats))
	for k, v := range b.stats {
		result[k] = v
	}
	return result
}

func (b *Builder) Mesh() *Mesh {
	return b.mesh
}

// Take a snapshot of the triangulation. If a boundary ring is given, only the
// triangles inside it (and outside any holes) are kept. Rings are added to the
// builder as constraints. Without any rings, the result covers the convex
// hull of the inserted points.
func (b *Builder) Finalize(boundary []VertexID, holes ...[]VertexID) (result *Triangulation, err error) {
	defer b.recoverInvariant(&err)
	if b.err != nil {
		return nil, b.err
	}
	if n := b.NumVertices(); n < 3 {
		return nil, configErrorf(ErrTooFewPoints, "%d vertices", n)
	}
	if b.Len() == 0 {
		return nil, configErrorf(ErrCollinearPoints, "%d vertices", b.NumVertices())
	}

	var rings [][]VertexID
	if boundary != nil {
		rings = append(rings, boundary)
	}
	rings = append(rings, holes...)
	for i, ring := range rings {
		cleaned, err := cleanRing(ring, nil, len(b.mesh.points))
		if err != nil {
			return nil, err
		}
		for _, v := range cleaned {
			if !b.mesh.HasVertex(v) {
				return nil, configErrorf(ErrUnknownVertex, "ring vertex %d is not in the triangulation", v)
			}
		}
		if err := checkRing(b.mesh.points, cleaned, b.opts.Predicates); err != nil {
			return nil, err
		}
		rings[i] = cleaned
	}
	if err := checkCrossings(b.mesh.points, ringSegments(rings), nil, b.opts.Predicates); err != nil {
		return nil, err
	}
	// Dry run, so that a ring crossing an existing constraint fails before
	// anything changes.
	for _, ring := range rings {
		for i, v := range ring {
			if _, err := b.mesh.planConstraint(v, ring[CircularIndex(i+1, len(ring))]); err != nil {
				return nil, err
			}
		}
	}

	identity := make([]VertexID, len(b.mesh.points))
	for i := range identity {
		identity[i] = VertexID(i)
	}
	return b.finalize(rings, boundary != nil, identity)
}

// Recover the rings, trim, and compact. The rings must already be validated.
func (b *Builder) finalize(rings [][]VertexID, hasBoundary bool, canonical []VertexID) (*Triangulation, error) {
	ringEdges := make(map[Edge]bool)
	var boundaryEdges map[Edge]bool
	if hasBoundary {
		boundaryEdges = make(map[Edge]bool)
	}
	for r, ring := range rings {
		for i, v := range ring {
			edges, err := b.constrain(v, ring[CircularIndex(i+1, len(ring))])
			if err != nil {
				return nil, err
			}
			for _, e := range edges {
				ringEdges[e.Key()] = true
				if hasBoundary && r == 0 {
					boundaryEdges[e.Key()] = true
				}
			}
		}
	}

	keep := b.mesh.trim(ringEdges, boundaryEdges)
	b.log.WithFields(logrus.Fields{
		"triangles": len(keep),
		"trimmed":   b.mesh.Len() - len(keep),
		"rings":     len(rings),
	}).Debug("finalized triangulation")
	return newTriangulation(b.mesh, keep, canonical), nil
}
