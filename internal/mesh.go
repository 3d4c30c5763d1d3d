package internal

import (
	"github.com/pkg/errors"
)

// Directions of the super-triangle vertices away from its origin. The cross
// product of each consecutive pair is 23, so the triangle is counterclockwise
// and contains the origin.
var superDirections = [3]Point{{X: -4, Y: -3}, {X: 5, Y: -2}, {X: -1, Y: 5}}

func superVertex(i int) VertexID {
	return VertexID(-1 - i)
}

func superIndex(v VertexID) int {
	return int(-1 - v)
}

// The triangulation state: a dense arena of triangles referring to each other
// and to vertices by index. Retired slots go on a free list and are reused.
type Mesh struct {
	points        []Point
	incident      []TriangleID
	superIncident [3]TriangleID
	triangles     []Triangle
	free          []TriangleID
	live          int
	origin        Point
	hasSuper      bool
	pred          Predicates
}

// Create a mesh holding only the super-triangle, centered on origin.
func NewMesh(origin Point, pred Predicates) *Mesh {
	if pred == nil {
		pred = AdaptivePredicates{}
	}
	m := &Mesh{origin: origin, pred: pred, hasSuper: true}
	m.CreateTriangle(
		[3]VertexID{superVertex(0), superVertex(1), superVertex(2)},
		[3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
	)
	return m
}

// Register a point so it has a vertex id. It isn't part of any triangle until
// it is inserted.
func (m *Mesh) AddPoint(p Point) VertexID {
	m.points = append(m.points, p)
	m.incident = append(m.incident, NoTriangle)
	return VertexID(len(m.points) - 1)
}

// Forget the most recently registered point. Only valid if it was never
// inserted.
func (m *Mesh) dropLastPoint() {
	last := len(m.points) - 1
	if m.incident[last] != NoTriangle {
		fatalf("cannot drop vertex %d, it is in the mesh", last)
	}
	m.points = m.points[:last]
	m.incident = m.incident[:last]
}

func (m *Mesh) NumPoints() int {
	return len(m.points)
}

func (m *Mesh) Point(v VertexID) Point {
	if v < 0 {
		fatalf("super-triangle vertex %d has no finite coordinates", v)
	}
	return m.points[v]
}

// Whether the vertex has been inserted into the mesh.
func (m *Mesh) HasVertex(v VertexID) bool {
	if v < 0 {
		return m.hasSuper && superIndex(v) < 3
	}
	return int(v) < len(m.incident) && m.incident[v] != NoTriangle
}

func (m *Mesh) sym(v VertexID) symPoint {
	if v < 0 {
		return symPoint{Base: m.origin, Dir: superDirections[superIndex(v)]}
	}
	return finiteSym(m.points[v])
}

func (m *Mesh) orient(a, b, c symPoint) Orientation {
	if a.isFinite() && b.isFinite() && c.isFinite() {
		return m.pred.Orient(a.Base, b.Base, c.Base)
	}
	return exactOrient(a, b, c)
}

func (m *Mesh) inCircle(a, b, c, d symPoint) CircleRelation {
	if a.isFinite() && b.isFinite() && c.isFinite() && d.isFinite() {
		return m.pred.InCircle(a.Base, b.Base, c.Base, d.Base)
	}
	return exactInCircle(a, b, c, d)
}

func (m *Mesh) orientV(a, b, c VertexID) Orientation {
	return m.orient(m.sym(a), m.sym(b), m.sym(c))
}

func (m *Mesh) inCircleV(a, b, c, d VertexID) CircleRelation {
	return m.inCircle(m.sym(a), m.sym(b), m.sym(c), m.sym(d))
}

// Number of live triangles.
func (m *Mesh) Len() int {
	return m.live
}

func (m *Mesh) Triangle(t TriangleID) *Triangle {
	return &m.triangles[t]
}

func (m *Mesh) LiveTriangles() []TriangleID {
	result := make([]TriangleID, 0, m.live)
	for i := range m.triangles {
		if m.triangles[i].live {
			result = append(result, TriangleID(i))
		}
	}
	return result
}

func (m *Mesh) allocate() TriangleID {
	var t TriangleID
	if n := len(m.free); n > 0 {
		t = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		m.triangles = append(m.triangles, Triangle{})
		t = TriangleID(len(m.triangles) - 1)
	}
	m.triangles[t].live = true
	m.live++
	return t
}

func (m *Mesh) setIncident(v VertexID, t TriangleID) {
	if v < 0 {
		m.superIncident[superIndex(v)] = t
	} else {
		m.incident[v] = t
	}
}

func (m *Mesh) CreateTriangle(v [3]VertexID, n [3]TriangleID) TriangleID {
	t := m.allocate()
	m.ReplaceTriangle(t, v, n)
	return t
}

// Overwrite a live triangle in place. Constraint flags are cleared, and the
// neighbors are not told about the change.
func (m *Mesh) ReplaceTriangle(t TriangleID, v [3]VertexID, n [3]TriangleID) {
	tri := &m.triangles[t]
	if !tri.live {
		fatalf("replacing retired triangle %d", t)
	}
	*tri = Triangle{V: v, N: n, live: true}
	for _, vertex := range v {
		m.setIncident(vertex, t)
	}
}

func (m *Mesh) RetireTriangle(t TriangleID) {
	tri := &m.triangles[t]
	if !tri.live {
		fatalf("triangle %d retired twice", t)
	}
	*tri = Triangle{N: [3]TriangleID{NoTriangle, NoTriangle, NoTriangle}}
	m.free = append(m.free, t)
	m.live--
}

func (m *Mesh) NeighborAcross(t TriangleID, edgeIndex int) TriangleID {
	return m.triangles[t].N[edgeIndex]
}

func (m *Mesh) FindIncidentTriangle(v VertexID) TriangleID {
	var t TriangleID
	if v < 0 {
		t = m.superIncident[superIndex(v)]
	} else {
		t = m.incident[v]
	}
	if t == NoTriangle || !m.triangles[t].live || !m.triangles[t].Has(v) {
		fatalf("stale incident triangle %d for vertex %d", t, v)
	}
	return t
}

// All triangles around v in counterclockwise order. If v is on the mesh
// boundary, the first triangle is the one whose clockwise side is open.
func (m *Mesh) Star(v VertexID) []TriangleID {
	start := m.FindIncidentTriangle(v)
	var result []TriangleID
	t := start
	for {
		result = append(result, t)
		tri := &m.triangles[t]
		n := tri.N[next(tri.IndexOf(v))]
		if n == start {
			return result
		}
		if n == NoTriangle {
			break
		}
		if len(result) > len(m.triangles) {
			fatalf("fan around vertex %d does not close", v)
		}
		t = n
	}

	// Open fan. Walk clockwise to the start of it.
	t = start
	for steps := 0; ; steps++ {
		tri := &m.triangles[t]
		n := tri.N[prev(tri.IndexOf(v))]
		if n == NoTriangle {
			break
		}
		if steps > len(m.triangles) {
			fatalf("fan around vertex %d does not open", v)
		}
		t = n
	}
	result = result[:0]
	for t != NoTriangle {
		result = append(result, t)
		tri := &m.triangles[t]
		t = tri.N[next(tri.IndexOf(v))]
	}
	return result
}

// Find a triangle with the directed edge a->b, and the index of that edge.
func (m *Mesh) FindEdge(a, b VertexID) (TriangleID, int, bool) {
	for _, t := range m.Star(a) {
		tri := &m.triangles[t]
		if i := tri.EdgeIndex(a, b); i >= 0 {
			return t, i, true
		}
	}
	return NoTriangle, -1, false
}

// Whether the undirected edge exists.
func (m *Mesh) HasEdge(a, b VertexID) bool {
	if _, _, ok := m.FindEdge(a, b); ok {
		return true
	}
	_, _, ok := m.FindEdge(b, a)
	return ok
}

// Flag an existing edge as constrained on both sides.
func (m *Mesh) markConstrained(a, b VertexID) {
	t, i, ok := m.FindEdge(a, b)
	if !ok {
		if t, i, ok = m.FindEdge(b, a); !ok {
			fatalf("no edge %d-%d to constrain", a, b)
		}
	}
	tri := &m.triangles[t]
	tri.Constrained[i] = true
	if n := tri.N[i]; n != NoTriangle {
		other := &m.triangles[n]
		other.Constrained[other.EdgeIndex(tri.V[prev(i)], tri.V[next(i)])] = true
	}
}

type rimEdge struct {
	outer       TriangleID
	constrained bool
}

type halfEdge struct {
	t TriangleID
	i int
}

// Replace a connected set of triangles with a new set covering the same
// region. The retired slots are reused in order, and the new triangles are
// stitched to each other and to the triangles around the cavity. Edges on the
// rim of the cavity keep their constraint flags, and any of the given
// constrained edges that appear inside the cavity are flagged. Returns the
// ids of the new triangles, in the order of the shapes.
func (m *Mesh) replaceCavity(retired []TriangleID, shapes [][3]VertexID, constrained []Edge) []TriangleID {
	inCavity := make(map[TriangleID]bool, len(retired))
	for _, t := range retired {
		inCavity[t] = true
	}
	rim := make(map[Edge]rimEdge)
	for _, t := range retired {
		tri := &m.triangles[t]
		if !tri.live {
			fatalf("cavity contains retired triangle %d", t)
		}
		for i := 0; i < 3; i++ {
			if n := tri.N[i]; n != NoTriangle && inCavity[n] {
				continue
			}
			rim[tri.Edge(i)] = rimEdge{tri.N[i], tri.Constrained[i]}
		}
	}
	forced := make(map[Edge]bool, len(constrained))
	for _, e := range constrained {
		forced[e.Key()] = true
	}

	ids := make([]TriangleID, len(shapes))
	for j := range shapes {
		if j < len(retired) {
			ids[j] = retired[j]
		} else {
			ids[j] = m.allocate()
		}
	}
	for j := len(shapes); j < len(retired); j++ {
		m.RetireTriangle(retired[j])
	}

	for j, shape := range shapes {
		m.triangles[ids[j]] = Triangle{
			V:    shape,
			N:    [3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
			live: true,
		}
	}

	open := make(map[Edge]halfEdge)
	for _, id := range ids {
		tri := &m.triangles[id]
		for i := 0; i < 3; i++ {
			e := tri.Edge(i)
			if r, ok := rim[e]; ok {
				tri.N[i] = r.outer
				tri.Constrained[i] = r.constrained || forced[e.Key()]
				if r.outer != NoTriangle {
					outer := &m.triangles[r.outer]
					k := outer.EdgeIndex(e.B, e.A)
					if k < 0 {
						fatalf("triangle %d lost its edge %d-%d", r.outer, e.B, e.A)
					}
					outer.N[k] = id
				}
				delete(rim, e)
				continue
			}
			tri.Constrained[i] = forced[e.Key()]
			if twin, ok := open[e.Reverse()]; ok {
				tri.N[i] = twin.t
				m.triangles[twin.t].N[twin.i] = id
				delete(open, e.Reverse())
			} else {
				open[e] = halfEdge{id, i}
			}
		}
		for _, v := range tri.V {
			m.setIncident(v, id)
		}
	}
	if len(rim) > 0 || len(open) > 0 {
		fatalf("cavity replacement left %d rim edges and %d interior edges unmatched", len(rim), len(open))
	}
	return ids
}

// Verify adjacency symmetry, orientation, incident pointers and constraint
// flags. Returns the first problem found.
func (m *Mesh) Check() error {
	live := 0
	for i := range m.triangles {
		tri := &m.triangles[i]
		if !tri.live {
			continue
		}
		live++
		t := TriangleID(i)
		if o := m.orientV(tri.V[0], tri.V[1], tri.V[2]); o != Left {
			return errors.Errorf("triangle %d %v is %v, not counterclockwise", t, tri.V, o)
		}
		for e := 0; e < 3; e++ {
			n := tri.N[e]
			if n == NoTriangle {
				continue
			}
			if int(n) >= len(m.triangles) || !m.triangles[n].live {
				return errors.Errorf("triangle %d has dead neighbor %d", t, n)
			}
			other := &m.triangles[n]
			k := other.EdgeIndex(tri.V[prev(e)], tri.V[next(e)])
			if k < 0 {
				return errors.Errorf("neighbor %d of triangle %d does not share edge %v", n, t, tri.Edge(e))
			}
			if other.N[k] != t {
				return errors.Errorf("adjacency between %d and %d is not symmetric", t, n)
			}
			if other.Constrained[k] != tri.Constrained[e] {
				return errors.Errorf("constraint flag on edge %v differs between %d and %d", tri.Edge(e), t, n)
			}
		}
	}
	if live != m.live {
		return errors.Errorf("live count is %d, but %d triangles are live", m.live, live)
	}
	for v, t := range m.incident {
		if t == NoTriangle {
			continue
		}
		if !m.triangles[t].live || !m.triangles[t].Has(VertexID(v)) {
			return errors.Errorf("vertex %d has stale incident triangle %d", v, t)
		}
	}
	return nil
}
