package internal

import (
	"sort"

	"github.com/golang/geo/r2"
)

// Center of the bounding box of the given vertices.
func boundsCenter(points []Point, ids []VertexID) Point {
	if len(ids) == 0 {
		return Point{}
	}
	bounds := r2.EmptyRect()
	for _, id := range ids {
		bounds = bounds.AddPoint(points[id])
	}
	return bounds.Center()
}

// Sort vertices by distance from center, then by x, then by y. Points are
// distinct, so this is a total order that depends only on coordinates.
func spatialOrder(points []Point, ids []VertexID, center Point) []VertexID {
	result := append([]VertexID(nil), ids...)
	distances := make(map[VertexID]float64, len(ids))
	for _, id := range ids {
		distances[id] = dist2(points[id], center)
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if distances[a] != distances[b] {
			return distances[a] < distances[b]
		}
		pa, pb := points[a], points[b]
		if pa != pb {
			return LessXY(pa, pb)
		}
		return a < b
	})
	return result
}

func insertionOrder(order InsertionOrder, points []Point, ids []VertexID, center Point) []VertexID {
	if order == OrderInput {
		return append([]VertexID(nil), ids...)
	}
	return spatialOrder(points, ids, center)
}
