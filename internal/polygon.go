package internal

import (
	"github.com/pkg/errors"
)

// Plain polygon triangulation. These don't build a mesh or care about the
// Delaunay property; they just cut a single simple polygon into triangles
// using its own vertices.

var (
	ErrNotEnoughIndices = errors.New("not enough vertex indices for a polygon")
	ErrSelfIntersecting = errors.New("polygon has self-intersections")
	ErrIndexOutOfRange  = errors.New("vertex index out of range")
)

// Fan triangulation of a convex polygon from its first vertex. The triangles
// wind the same way as the polygon.
func FanTriangulate(indices []VertexID) ([][3]VertexID, error) {
	if len(indices) < 3 {
		return nil, ErrNotEnoughIndices
	}
	result := make([][3]VertexID, 0, len(indices)-2)
	for i := 2; i < len(indices); i++ {
		result = append(result, [3]VertexID{indices[0], indices[i-1], indices[i]})
	}
	return result, nil
}

// Triangulate a simple polygon by ear clipping. The polygon is given by
// indices into points, in either winding. If indices is nil, every point is
// used in order. The triangles are counterclockwise.
//
// Collinear vertices are dropped without a triangle of their own. This is
// quadratic or worse, so it's for small polygons.
func EarClip(points []Point, indices []VertexID) ([][3]VertexID, error) {
	if indices == nil {
		indices = make([]VertexID, len(points))
		for i := range indices {
			indices[i] = VertexID(i)
		}
	}
	if len(indices) < 3 {
		return nil, ErrNotEnoughIndices
	}
	for _, i := range indices {
		if i < 0 || int(i) >= len(points) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "vertex index %d is outside of vertex list of length %d", i, len(points))
		}
		if !IsFinite(points[i]) {
			return nil, errors.Wrapf(ErrNonFinitePoint, "vertex %d", i)
		}
	}

	remaining := append([]VertexID(nil), indices...)
	if polygonArea2(points, remaining) < 0 {
		for i, j := 0, len(remaining)-1; i < j; i, j = i+1, j-1 {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		}
	}

	result := make([][3]VertexID, 0, len(indices)-2)
	for len(remaining) > 3 {
		clipped := false
		for i := 0; i < len(remaining) && len(remaining) > 3; i++ {
			n := len(remaining)
			prevV := remaining[CircularIndex(i-1, n)]
			cur := remaining[i]
			nextV := remaining[CircularIndex(i+1, n)]
			switch Orient(points[prevV], points[cur], points[nextV]) {
			case Right:
				continue
			case Left:
				if !isEar(points, remaining, prevV, cur, nextV) {
					continue
				}
				result = append(result, [3]VertexID{prevV, cur, nextV})
			}
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			i--
		}
		if !clipped {
			return nil, ErrSelfIntersecting
		}
	}
	switch Orient(points[remaining[0]], points[remaining[1]], points[remaining[2]]) {
	case Left:
		result = append(result, [3]VertexID{remaining[0], remaining[1], remaining[2]})
	case Right:
		// What's left winds backwards, so the polygon folded over itself
		return nil, ErrSelfIntersecting
	}
	if len(result) == 0 {
		return nil, ErrSelfIntersecting
	}
	return result, nil
}

// Whether no other vertex of the polygon lies in or on the triangle.
func isEar(points []Point, polygon []VertexID, a, b, c VertexID) bool {
	pa, pb, pc := points[a], points[b], points[c]
	for _, v := range polygon {
		p := points[v]
		if v == a || v == b || v == c || p == pa || p == pb || p == pc {
			continue
		}
		if Orient(pa, pb, p) != Right && Orient(pb, pc, p) != Right && Orient(pc, pa, p) != Right {
			return false
		}
	}
	return true
}

// Twice the signed area, positive when counterclockwise.
func polygonArea2(points []Point, polygon []VertexID) float64 {
	var area float64
	for i, v := range polygon {
		w := polygon[CircularIndex(i+1, len(polygon))]
		area += points[v].X*points[w].Y - points[w].X*points[v].Y
	}
	return area
}
