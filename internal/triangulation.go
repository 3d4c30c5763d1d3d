package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// A finished triangulation. It is immutable, so any number of goroutines may
// query it at once.
//
// Triangles are counterclockwise, start at their lowest vertex id, and are
// sorted, so equal inputs always give identical results.
type Triangulation struct {
	mesh      *Mesh
	canonical []VertexID
}

// Compact the kept triangles of src into a new mesh with no super-triangle.
// src is not modified.
func newTriangulation(src *Mesh, keep []TriangleID, canonical []VertexID) *Triangulation {
	type entry struct {
		old TriangleID
		tri Triangle
	}
	entries := make([]entry, len(keep))
	for i, t := range keep {
		tri := src.triangles[t]
		lowest := 0
		for k := 1; k < 3; k++ {
			if tri.V[k] < tri.V[lowest] {
				lowest = k
			}
		}
		entries[i] = entry{t, tri.rotated(lowest)}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].tri.V, entries[j].tri.V
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	newID := make(map[TriangleID]TriangleID, len(entries))
	for i, e := range entries {
		newID[e.old] = TriangleID(i)
	}

	mesh := &Mesh{
		points:    append([]Point(nil), src.points...),
		incident:  make([]TriangleID, len(src.points)),
		triangles: make([]Triangle, len(entries)),
		live:      len(entries),
		origin:    src.origin,
		pred:      src.pred,
	}
	for i := range mesh.incident {
		mesh.incident[i] = NoTriangle
	}
	for i, e := range entries {
		tri := e.tri
		for k := 0; k < 3; k++ {
			if n, ok := newID[tri.N[k]]; ok {
				tri.N[k] = n
			} else {
				tri.N[k] = NoTriangle
			}
		}
		mesh.triangles[i] = tri
		for _, v := range tri.V {
			if mesh.incident[v] == NoTriangle {
				mesh.incident[v] = TriangleID(i)
			}
		}
	}
	return &Triangulation{mesh: mesh, canonical: append([]VertexID(nil), canonical...)}
}

// Number of triangles.
func (tr *Triangulation) Len() int {
	return len(tr.mesh.triangles)
}

func (tr *Triangulation) Triangles() [][3]VertexID {
	result := make([][3]VertexID, len(tr.mesh.triangles))
	for i := range tr.mesh.triangles {
		result[i] = tr.mesh.triangles[i].V
	}
	return result
}

// Copy of triangle t, including neighbors and constraint flags.
func (tr *Triangulation) Triangle(t TriangleID) Triangle {
	return tr.mesh.triangles[t]
}

func (tr *Triangulation) Neighbors(t TriangleID) [3]TriangleID {
	return tr.mesh.triangles[t].N
}

// Coordinates of every vertex used by some triangle.
func (tr *Triangulation) Vertices() map[VertexID]Point {
	result := make(map[VertexID]Point)
	for v, t := range tr.mesh.incident {
		if t != NoTriangle {
			result[VertexID(v)] = tr.mesh.points[v]
		}
	}
	return result
}

// The coordinates of any input point, including merged duplicates.
func (tr *Triangulation) Point(v VertexID) Point {
	return tr.mesh.points[v]
}

// The vertex an input point was merged into, or the point's own id.
func (tr *Triangulation) Canonical(v VertexID) VertexID {
	return tr.canonical[v]
}

// Number of input points, including merged duplicates.
func (tr *Triangulation) NumPoints() int {
	return len(tr.mesh.points)
}

// Find the triangle containing p. Points outside the triangulated region give
// ErrOutsideHull.
func (tr *Triangulation) Locate(p Point) (Location, error) {
	if !IsFinite(p) {
		return Location{Kind: OutsideHull, Triangle: NoTriangle}, configErrorf(ErrNonFinitePoint, "(%g, %g)", p.X, p.Y)
	}
	loc := tr.mesh.Locate(p, 0)
	if loc.Kind == OutsideHull {
		return loc, errors.Wrapf(ErrOutsideHull, "(%g, %g)", p.X, p.Y)
	}
	return loc, nil
}

// Every edge once, sorted.
func (tr *Triangulation) Edges() []Edge {
	return tr.edges(func(*Triangle, int) bool { return true })
}

// The edges that were forced by constraints or rings, sorted.
func (tr *Triangulation) ConstrainedEdges() []Edge {
	return tr.edges(func(tri *Triangle, i int) bool { return tri.Constrained[i] })
}

func (tr *Triangulation) edges(include func(*Triangle, int) bool) []Edge {
	seen := make(map[Edge]bool)
	var result []Edge
	for i := range tr.mesh.triangles {
		tri := &tr.mesh.triangles[i]
		for k := 0; k < 3; k++ {
			e := tri.Edge(k).Key()
			if seen[e] || !include(tri, k) {
				continue
			}
			seen[e] = true
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].A != result[j].A {
			return result[i].A < result[j].A
		}
		return result[i].B < result[j].B
	})
	return result
}

// Verify the structural invariants of the mesh.
func (tr *Triangulation) Check() error {
	return tr.mesh.Check()
}

// The underlying mesh. It must not be modified.
func (tr *Triangulation) Mesh() *Mesh {
	return tr.mesh
}
