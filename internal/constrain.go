package internal

// A stretch of a constraint with no vertex on its interior, and the triangles
// its segment crosses. If crossed is empty, the edge already exists.
type constraintPiece struct {
	a, b    VertexID
	crossed []TriangleID
	// Vertices of the crossed triangles left and right of a->b, in the order
	// the segment passes them.
	left, right []VertexID
}

// Work out how to recover the edge a-b without touching the mesh. The edge is
// split wherever it passes exactly through a vertex. Fails if the segment
// crosses an edge that is already constrained.
func (m *Mesh) planConstraint(a, b VertexID) ([]constraintPiece, error) {
	if a == b {
		return nil, configErrorf(ErrDegenerateConstraint, "constraint from vertex %d to itself", a)
	}
	for _, v := range []VertexID{a, b} {
		if v < 0 || !m.HasVertex(v) {
			return nil, configErrorf(ErrUnknownVertex, "vertex %d is not in the triangulation", v)
		}
	}

	var pieces []constraintPiece
	origin := a
	for a != b {
		piece, err := m.planPiece(a, b)
		if err != nil {
			if configErr, ok := err.(*ConfigurationError); ok {
				configErr.Detail = "constraint " + edgeString(origin, b) + ": " + configErr.Detail
			}
			return nil, err
		}
		pieces = append(pieces, piece)
		a = piece.b
		if len(pieces) > len(m.points) {
			fatalf("constraint %d-%d did not reach its end", origin, b)
		}
	}
	return pieces, nil
}

func (m *Mesh) planPiece(a, b VertexID) (constraintPiece, error) {
	star := m.Star(a)
	for _, t := range star {
		tri := &m.triangles[t]
		k := tri.IndexOf(a)
		if tri.V[next(k)] == b || tri.V[prev(k)] == b {
			return constraintPiece{a: a, b: b}, nil
		}
	}

	for _, t := range star {
		tri := &m.triangles[t]
		k := tri.IndexOf(a)
		p, q := tri.V[next(k)], tri.V[prev(k)]
		toP := m.orientV(a, p, b)
		if toP == Collinear && m.onRay(a, b, p) {
			return constraintPiece{a: a, b: p}, nil
		}
		if toP != Left || m.orientV(a, q, b) != Right {
			continue
		}
		return m.walkConstraint(a, b, t, k)
	}
	fatalf("no triangle around vertex %d faces vertex %d", a, b)
	return constraintPiece{}, nil
}

// Whether v lies on the ray from a through b. Only valid when a, b and v are
// known to be collinear, so comparing signs is exact.
func (m *Mesh) onRay(a, b, v VertexID) bool {
	if v < 0 {
		return false
	}
	pa, pb, pv := m.points[a], m.points[b], m.points[v]
	return sign(pv.X-pa.X) == sign(pb.X-pa.X) && sign(pv.Y-pa.Y) == sign(pb.Y-pa.Y)
}

// Walk from a toward b, starting by crossing edge k of triangle t, collecting
// the crossed triangles.
func (m *Mesh) walkConstraint(a, b VertexID, t TriangleID, k int) (constraintPiece, error) {
	tri := &m.triangles[t]
	r, l := tri.V[next(k)], tri.V[prev(k)]
	piece := constraintPiece{
		a:       a,
		crossed: []TriangleID{t},
		right:   []VertexID{r},
		left:    []VertexID{l},
	}

	cur, exit := t, k
	for {
		if m.triangles[cur].Constrained[exit] {
			return piece, configErrorf(ErrCrossingConstraints, "crosses constrained edge %s", edgeString(r, l))
		}
		u := m.triangles[cur].N[exit]
		if u == NoTriangle {
			fatalf("constraint %d-%d left the mesh", a, b)
		}
		piece.crossed = append(piece.crossed, u)
		other := &m.triangles[u]
		j := other.EdgeIndex(l, r)
		if j < 0 {
			fatalf("triangles %d and %d disagree about edge %d-%d", cur, u, r, l)
		}
		w := other.V[j]
		if w == b {
			piece.b = b
			return piece, nil
		}

		switch m.orientV(a, b, w) {
		case Left:
			piece.left = append(piece.left, w)
			l = w
			exit = next(j)
		case Right:
			piece.right = append(piece.right, w)
			r = w
			exit = prev(j)
		default:
			if w < 0 {
				fatalf("constraint %d-%d runs into the super-triangle", a, b)
			}
			piece.b = w
			return piece, nil
		}
		cur = u
	}
}

// Recover a planned piece. The crossed triangles are replaced by Delaunay
// triangulations of the pseudo-polygons on either side of the new edge.
func (m *Mesh) enforcePiece(piece constraintPiece) {
	if len(piece.crossed) == 0 {
		m.markConstrained(piece.a, piece.b)
		return
	}
	right := make([]VertexID, len(piece.right))
	for i, v := range piece.right {
		right[len(right)-1-i] = v
	}
	shapes := m.triangulatePseudoPolygon(piece.a, piece.b, piece.left, nil)
	shapes = m.triangulatePseudoPolygon(piece.b, piece.a, right, shapes)
	m.replaceCavity(piece.crossed, shapes, []Edge{{piece.a, piece.b}})
}

// Triangulate the polygon formed by the base edge first->second and the chain
// of vertices to its left, ordered from first to second. The apex is the chain
// vertex whose circle through the base is empty of the others, and the two
// sides of it are handled recursively.
func (m *Mesh) triangulatePseudoPolygon(first, second VertexID, chain []VertexID, out [][3]VertexID) [][3]VertexID {
	if len(chain) == 0 {
		return out
	}
	ci := 0
	for i := 1; i < len(chain); i++ {
		if m.inCircleV(first, second, chain[ci], chain[i]) == Inside {
			ci = i
		}
	}
	c := chain[ci]
	out = m.triangulatePseudoPolygon(first, c, chain[:ci], out)
	out = m.triangulatePseudoPolygon(c, second, chain[ci+1:], out)
	return append(out, [3]VertexID{first, second, c})
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
