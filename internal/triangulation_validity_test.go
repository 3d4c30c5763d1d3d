package internal

// This contains no actual tests. It is just helpers for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The mesh passes its own structural check.
// 2. Every triangle is counterclockwise, by exact arithmetic.
// 3. Every given constraint is an edge, and is flagged as constrained.
// 4. Every edge that isn't constrained is locally Delaunay, which makes the
// whole triangulation constrained Delaunay.
func AssertValidTriangulation(t *testing.T, tr *Triangulation, constraints ...Edge) {
	require.NoError(t, tr.Check())

	constrained := make(map[Edge]bool)
	for _, e := range tr.ConstrainedEdges() {
		constrained[e] = true
	}
	for _, e := range constraints {
		require.True(t, constrained[e.Key()], "constraint %v is not a constrained edge of the triangulation", e)
	}

	pred := ExactPredicates{}
	for i := 0; i < tr.Len(); i++ {
		tri := tr.Triangle(TriangleID(i))
		a, b, c := tr.Point(tri.V[0]), tr.Point(tri.V[1]), tr.Point(tri.V[2])
		require.Equal(t, Left, pred.Orient(a, b, c), "triangle %v is not counterclockwise", tri.V)
		for k := 0; k < 3; k++ {
			n := tri.N[k]
			if n == NoTriangle || tri.Constrained[k] {
				continue
			}
			other := tr.Triangle(n)
			j := other.EdgeIndex(tri.V[prev(k)], tri.V[next(k)])
			require.True(t, j >= 0, "neighbor %d of %v does not share edge %d", n, tri.V, k)
			d := tr.Point(other.V[j])
			assert.NotEqual(t, Inside, pred.InCircle(a, b, c, d), "edge %v of %v is not locally Delaunay", tri.Edge(k), tri.V)
		}
	}
}

// Brute force check of the empty circumcircle property against every vertex.
func AssertEmptyCircumcircles(t *testing.T, tr *Triangulation) {
	pred := AdaptivePredicates{}
	vertices := tr.Vertices()
	for _, tri := range tr.Triangles() {
		a, b, c := tr.Point(tri[0]), tr.Point(tri[1]), tr.Point(tri[2])
		for v, p := range vertices {
			if v == tri[0] || v == tri[1] || v == tri[2] {
				continue
			}
			if !assert.NotEqual(t, Inside, pred.InCircle(a, b, c, p), "vertex %d is inside the circumcircle of %v", v, tri) {
				return
			}
		}
	}
}

func triangulationArea(tr *Triangulation) float64 {
	var area float64
	for _, tri := range tr.Triangles() {
		area += SignedArea2(tr.Point(tri[0]), tr.Point(tri[1]), tr.Point(tri[2])) / 2
	}
	return area
}

// Area of the convex hull, by the monotone chain.
func convexHullArea(points []Point) float64 {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return LessXY(sorted[i], sorted[j]) })
	var hull []Point
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for _, p := range sorted {
			for len(hull) >= start+2 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) != Left {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		hull = hull[:len(hull)-1]
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	var area float64
	for i, p := range hull {
		q := hull[CircularIndex(i+1, len(hull))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// Triangles under a renaming of the vertices, in canonical order.
func canonicalTriangles(triangles [][3]VertexID, rename func(VertexID) VertexID) [][3]VertexID {
	result := make([][3]VertexID, len(triangles))
	for i, tri := range triangles {
		for k := range tri {
			tri[k] = rename(tri[k])
		}
		lowest := 0
		for k := 1; k < 3; k++ {
			if tri[k] < tri[lowest] {
				lowest = k
			}
		}
		result[i] = [3]VertexID{tri[lowest], tri[CircularIndex(lowest+1, 3)], tri[CircularIndex(lowest+2, 3)]}
	}
	sort.Slice(result, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if result[i][k] != result[j][k] {
				return result[i][k] < result[j][k]
			}
		}
		return false
	})
	return result
}

// Even-odd containment, by casting a ray to the right.
func evenOddContains(rings [][]Point, p Point) bool {
	inside := false
	for _, ring := range rings {
		for i, a := range ring {
			b := ring[CircularIndex(i+1, len(ring))]
			if (a.Y > p.Y) == (b.Y > p.Y) {
				continue
			}
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Sample a grid over the rings, and check that the triangulation covers exactly
// the points the rings contain by the even-odd rule. The grid is offset so it
// never lands on a ring edge of the fixtures.
func validateRegionBySampling(t *testing.T, tr *Triangulation, rings [][]Point) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	for y := minY + step*0.3183; y <= maxY; y += step {
		for x := minX + step*0.2718; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			_, err := tr.Locate(p)
			if evenOddContains(rings, p) {
				assert.NoError(t, err, "point %v should be in the triangulation", p)
			} else {
				assert.ErrorIs(t, err, ErrOutsideHull, "point %v should not be in the triangulation", p)
			}
		}
	}
}
