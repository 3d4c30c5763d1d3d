package internal

import "fmt"

type LocationKind int

const (
	InTriangle LocationKind = iota
	OnEdge
	OnVertex
	OutsideHull
)

func (k LocationKind) String() string {
	switch k {
	case InTriangle:
		return "InTriangle"
	case OnEdge:
		return "OnEdge"
	case OnVertex:
		return "OnVertex"
	case OutsideHull:
		return "OutsideHull"
	}
	return fmt.Sprintf("LocationKind(%d)", int(k))
}

// Result of point location. Edge is only meaningful for OnEdge, and Vertex only
// for OnVertex. Triangle is NoTriangle for OutsideHull.
type Location struct {
	Kind     LocationKind
	Triangle TriangleID
	Edge     int
	Vertex   VertexID
}

// Find the triangle containing q by walking from start toward it. Each step
// crosses an edge that q lies strictly beyond, never the edge just crossed.
//
// In a Delaunay triangulation this walk always terminates. Constrained
// triangulations can make it cycle, so after a bounded number of steps, or on
// reaching the mesh boundary, we fall back to scanning every triangle.
func (m *Mesh) Locate(q Point, start TriangleID) Location {
	if start == NoTriangle || int(start) >= len(m.triangles) || !m.triangles[start].live {
		start = m.anyTriangle()
		if start == NoTriangle {
			return Location{Kind: OutsideHull, Triangle: NoTriangle}
		}
	}

	qs := finiteSym(q)
	limit := 2*m.live + 16
	t := start
	from := NoTriangle
	for steps := 0; steps < limit; steps++ {
		tri := &m.triangles[t]
		var orientations [3]Orientation
		moved := false
		for i := 0; i < 3; i++ {
			if from != NoTriangle && tri.N[i] == from {
				orientations[i] = Left
				continue
			}
			orientations[i] = m.orient(m.sym(tri.V[next(i)]), m.sym(tri.V[prev(i)]), qs)
			if orientations[i] == Right {
				if tri.N[i] == NoTriangle {
					return m.scan(qs)
				}
				from = t
				t = tri.N[i]
				moved = true
				break
			}
		}
		if !moved {
			return classifyLocation(tri, t, orientations)
		}
	}
	return m.scan(qs)
}

// Linear search through every triangle, lowest id first.
func (m *Mesh) scan(qs symPoint) Location {
	for i := range m.triangles {
		tri := &m.triangles[i]
		if !tri.live {
			continue
		}
		var orientations [3]Orientation
		inside := true
		for e := 0; e < 3; e++ {
			orientations[e] = m.orient(m.sym(tri.V[next(e)]), m.sym(tri.V[prev(e)]), qs)
			if orientations[e] == Right {
				inside = false
				break
			}
		}
		if inside {
			return classifyLocation(tri, TriangleID(i), orientations)
		}
	}
	return Location{Kind: OutsideHull, Triangle: NoTriangle}
}

func classifyLocation(tri *Triangle, t TriangleID, orientations [3]Orientation) Location {
	var zeros []int
	for i, o := range orientations {
		if o == Collinear {
			zeros = append(zeros, i)
		}
	}
	switch len(zeros) {
	case 0:
		return Location{Kind: InTriangle, Triangle: t}
	case 1:
		return Location{Kind: OnEdge, Triangle: t, Edge: zeros[0]}
	case 2:
		// Both edges contain the query point, so it's their shared vertex, which
		// is opposite the third edge.
		k := 3 - zeros[0] - zeros[1]
		return Location{Kind: OnVertex, Triangle: t, Vertex: tri.V[k]}
	}
	fatalf("triangle %d %v is degenerate", t, tri.V)
	return Location{}
}

func (m *Mesh) anyTriangle() TriangleID {
	for i := range m.triangles {
		if m.triangles[i].live {
			return TriangleID(i)
		}
	}
	return NoTriangle
}
