package internal

import "github.com/golang/geo/r2"

type Point = r2.Point

// Vertices are referred to by the index of the point the caller supplied.
// Negative ids are reserved for the vertices of the super-triangle, which never
// leave this package.
type VertexID int

type TriangleID int

// Sentinel for a missing neighbor across a mesh boundary
const NoTriangle TriangleID = -1

// An unordered pair of vertices.
type Edge struct {
	A, B VertexID
}

// Normalize the edge so that A < B, so it can be used as a map key.
func (e Edge) Key() Edge {
	if e.A > e.B {
		return Edge{e.B, e.A}
	}
	return e
}

func (e Edge) Reverse() Edge {
	return Edge{e.B, e.A}
}

// A triangle in the mesh arena. Vertices are counterclockwise. Edge i runs
// from V[i+1] to V[i+2] (mod 3), so it is the edge opposite V[i], and N[i] is
// the neighbor across it.
type Triangle struct {
	V           [3]VertexID
	N           [3]TriangleID
	Constrained [3]bool
	live        bool
}

func (t Triangle) Live() bool {
	return t.live
}

// Index of v in the triangle, or -1.
func (t Triangle) IndexOf(v VertexID) int {
	for i, w := range t.V {
		if w == v {
			return i
		}
	}
	return -1
}

// Index of the edge running from a to b (in the triangle's winding), or -1.
func (t Triangle) EdgeIndex(a, b VertexID) int {
	for i := 0; i < 3; i++ {
		if t.V[next(i)] == a && t.V[prev(i)] == b {
			return i
		}
	}
	return -1
}

// The directed edge i.
func (t Triangle) Edge(i int) Edge {
	return Edge{t.V[next(i)], t.V[prev(i)]}
}

func (t Triangle) Has(v VertexID) bool {
	return t.IndexOf(v) >= 0
}

// Whether the triangle touches a super-triangle vertex.
func (t Triangle) IsAuxiliary() bool {
	return t.V[0] < 0 || t.V[1] < 0 || t.V[2] < 0
}

// Rotated copy where index r becomes index 0.
func (t Triangle) rotated(r int) Triangle {
	var result Triangle
	for i := 0; i < 3; i++ {
		j := CircularIndex(i+r, 3)
		result.V[i] = t.V[j]
		result.N[i] = t.N[j]
		result.Constrained[i] = t.Constrained[j]
	}
	result.live = t.live
	return result
}

func next(i int) int {
	return CircularIndex(i+1, 3)
}

func prev(i int) int {
	return CircularIndex(i+2, 3)
}
