package internal

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// Input checks run before any mesh is touched. The R-tree keeps the pairwise
// checks (duplicate points, crossing segments) from being quadratic.

func pointBox(p Point, pad float64) rtree.Box {
	return rtree.Box{MinX: p.X - pad, MinY: p.Y - pad, MaxX: p.X + pad, MaxY: p.Y + pad}
}

func segmentBox(a, b Point) rtree.Box {
	return rtree.Box{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

func boxIntersection(a, b rtree.Box) rtree.Box {
	return rtree.Box{
		MinX: math.Max(a.MinX, b.MinX),
		MinY: math.Max(a.MinY, b.MinY),
		MaxX: math.Min(a.MaxX, b.MaxX),
		MaxY: math.Min(a.MaxY, b.MaxY),
	}
}

// Map every point to the earliest point within tolerance of it, or to itself.
// Also returns an index of the points that map to themselves.
func dedupPoints(points []Point, tolerance float64) ([]VertexID, *rtree.RTree) {
	canonical := make([]VertexID, len(points))
	index := &rtree.RTree{}
	for i, p := range points {
		best := -1
		_ = index.RangeSearch(pointBox(p, tolerance), func(j int) error {
			q := points[j]
			if tolerance == 0 && q != p {
				return nil
			}
			if tolerance > 0 && dist2(p, q) > tolerance*tolerance {
				return nil
			}
			if best < 0 || j < best {
				best = j
			}
			return nil
		})
		if best >= 0 {
			canonical[i] = VertexID(best)
			continue
		}
		canonical[i] = VertexID(i)
		index.Insert(pointBox(p, 0), i)
	}
	return canonical, index
}

func allCollinear(points []Point, ids []VertexID, pred Predicates) bool {
	if len(ids) < 3 {
		return true
	}
	a, b := points[ids[0]], points[ids[1]]
	for _, id := range ids[2:] {
		if pred.Orient(a, b, points[id]) != Collinear {
			return false
		}
	}
	return true
}

// Check the ids of a ring, map them to canonical vertices (if canonical is
// non-nil), and drop repeats of the same vertex in a row, including an
// explicit closing vertex.
func cleanRing(ring []VertexID, canonical []VertexID, n int) ([]VertexID, error) {
	result := make([]VertexID, 0, len(ring))
	for _, v := range ring {
		if v < 0 || int(v) >= n {
			return nil, configErrorf(ErrUnknownVertex, "ring vertex %d is outside of vertex list of length %d", v, n)
		}
		if canonical != nil {
			v = canonical[v]
		}
		if len(result) > 0 && result[len(result)-1] == v {
			continue
		}
		result = append(result, v)
	}
	if len(result) > 1 && result[0] == result[len(result)-1] {
		result = result[:len(result)-1]
	}
	if len(result) < 3 {
		return nil, configErrorf(ErrMalformedBoundary, "ring has %d distinct vertices", len(result))
	}
	seen := make(map[VertexID]bool, len(result))
	for _, v := range result {
		if seen[v] {
			return nil, configErrorf(ErrMalformedBoundary, "ring visits vertex %d more than once", v)
		}
		seen[v] = true
	}
	return result, nil
}

// Geometric checks on a single ring: it must enclose some area, and no vertex
// may touch an edge it isn't an end of. Crossings are found by checkCrossings.
func checkRing(points []Point, ring []VertexID, pred Predicates) error {
	if allCollinear(points, ring, pred) {
		return configErrorf(ErrMalformedBoundary, "ring has zero area")
	}

	index := &rtree.RTree{}
	for i, v := range ring {
		w := ring[CircularIndex(i+1, len(ring))]
		index.Insert(segmentBox(points[v], points[w]), i)
	}
	for _, v := range ring {
		p := points[v]
		err := index.RangeSearch(pointBox(p, 0), func(i int) error {
			a, b := ring[i], ring[CircularIndex(i+1, len(ring))]
			if v == a || v == b {
				return nil
			}
			if pred.Orient(points[a], points[b], p) == Collinear {
				return configErrorf(ErrMalformedBoundary, "ring vertex %d touches ring edge %s", v, edgeString(a, b))
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// A segment that will become a constrained edge. Ring is the index of the
// ring it belongs to, or -1 for a plain constraint.
type segment struct {
	a, b VertexID
	ring int
}

func ringSegments(rings [][]VertexID) []segment {
	var result []segment
	for r, ring := range rings {
		for i, v := range ring {
			result = append(result, segment{v, ring[CircularIndex(i+1, len(ring))], r})
		}
	}
	return result
}

func constraintSegments(edges []Edge) []segment {
	result := make([]segment, len(edges))
	for i, e := range edges {
		result[i] = segment{e.A, e.B, -1}
	}
	return result
}

// Find a pair of segments whose interiors cross at a single point. Touching at
// endpoints, T-junctions and collinear overlaps are all fine, since the
// constraint recovery splits edges at the vertices on them. A crossing
// exactly at a vertex is fine for the same reason, unless both segments are
// ring edges. The vertex index is only needed for that last case.
func checkCrossings(points []Point, segments []segment, vertexIndex *rtree.RTree, pred Predicates) error {
	index := &rtree.RTree{}
	boxes := make([]rtree.Box, len(segments))
	for i, s := range segments {
		boxes[i] = segmentBox(points[s.a], points[s.b])
		index.Insert(boxes[i], i)
	}

	for i, s := range segments {
		err := index.RangeSearch(boxes[i], func(j int) error {
			if j <= i {
				return nil
			}
			t := segments[j]
			if !properlyCross(points, s, t, pred) {
				return nil
			}
			bothRings := s.ring >= 0 && t.ring >= 0
			if !bothRings && vertexIndex != nil &&
				crossAtVertex(points, s, t, boxIntersection(boxes[i], boxes[j]), vertexIndex, pred) {
				return nil
			}
			if bothRings {
				return configErrorf(ErrMalformedBoundary, "ring edges %s and %s cross", edgeString(s.a, s.b), edgeString(t.a, t.b))
			}
			return configErrorf(ErrCrossingConstraints, "%s crosses %s", edgeString(s.a, s.b), edgeString(t.a, t.b))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func properlyCross(points []Point, s, t segment, pred Predicates) bool {
	a, b := points[s.a], points[s.b]
	c, d := points[t.a], points[t.b]
	o1 := pred.Orient(a, b, c)
	o2 := pred.Orient(a, b, d)
	if o1 == Collinear || o2 == Collinear || o1 == o2 {
		return false
	}
	o3 := pred.Orient(c, d, a)
	o4 := pred.Orient(c, d, b)
	return o3 != Collinear && o4 != Collinear && o3 != o4
}

// Whether two properly crossing segments cross exactly at an input vertex.
func crossAtVertex(points []Point, s, t segment, box rtree.Box, vertexIndex *rtree.RTree, pred Predicates) bool {
	found := false
	_ = vertexIndex.RangeSearch(box, func(id int) error {
		v := VertexID(id)
		if v == s.a || v == s.b || v == t.a || v == t.b {
			return nil
		}
		p := points[v]
		if pred.Orient(points[s.a], points[s.b], p) == Collinear &&
			pred.Orient(points[t.a], points[t.b], p) == Collinear {
			found = true
			return rtree.Stop
		}
		return nil
	})
	return found
}
