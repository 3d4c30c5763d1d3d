package internal

// Replace triangle t with three triangles fanning around v, which must lie
// strictly inside it.
func (m *Mesh) splitTriangle(t TriangleID, v VertexID) []TriangleID {
	tri := m.triangles[t]
	a, b, c := tri.V[0], tri.V[1], tri.V[2]
	return m.replaceCavity(
		[]TriangleID{t},
		[][3]VertexID{{v, b, c}, {a, v, c}, {a, b, v}},
		nil,
	)
}

// Split edge i of triangle t at v, which must lie strictly inside the edge.
// The two triangles sharing the edge become four. If the edge was
// constrained, both halves are.
func (m *Mesh) splitEdge(t TriangleID, i int, v VertexID) []TriangleID {
	tri := m.triangles[t]
	a, p, q := tri.V[i], tri.V[next(i)], tri.V[prev(i)]
	var constrained []Edge
	if tri.Constrained[i] {
		constrained = []Edge{{p, v}, {v, q}}
	}
	u := tri.N[i]
	if u == NoTriangle {
		fatalf("cannot split boundary edge %d-%d", p, q)
	}
	other := &m.triangles[u]
	d := other.V[other.EdgeIndex(q, p)]
	return m.replaceCavity(
		[]TriangleID{t, u},
		[][3]VertexID{{a, p, v}, {a, v, q}, {d, q, v}, {d, v, p}},
		constrained,
	)
}

// Restore the Delaunay property around v after a split. Each triangle on the
// worklist has v as a vertex, and the edge opposite v is tested against the
// vertex across it. Exact ties are left alone. Constrained edges are never
// flipped. Returns the number of flips and of ties seen.
func (m *Mesh) legalize(v VertexID, triangles []TriangleID) (flips, ties int) {
	budget := len(m.points) + len(m.triangles) + 16
	stack := append([]TriangleID(nil), triangles...)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tri := &m.triangles[t]
		k := tri.IndexOf(v)
		if !tri.live || k < 0 || tri.Constrained[k] {
			continue
		}
		u := tri.N[k]
		if u == NoTriangle {
			continue
		}
		a, b := tri.V[next(k)], tri.V[prev(k)]
		other := &m.triangles[u]
		j := other.EdgeIndex(b, a)
		if j < 0 {
			fatalf("triangles %d and %d disagree about edge %d-%d", t, u, a, b)
		}
		d := other.V[j]

		switch m.inCircleV(v, a, b, d) {
		case Inside:
			flips++
			if flips > budget {
				fatalf("legalization around vertex %d did not terminate", v)
			}
			ids := m.replaceCavity(
				[]TriangleID{t, u},
				[][3]VertexID{{v, a, d}, {v, d, b}},
				nil,
			)
			stack = append(stack, ids...)
		case OnCircle:
			ties++
		}
	}
	return flips, ties
}
