package internal

// Decide which triangles survive finalization. Every triangle gets a depth:
// the fewest ring edges crossed to reach it from the super-triangle, where
// other constrained edges are crossed freely. Inside a boundary means odd
// depth. Without a boundary (boundary is nil), holes are the odd depths, so
// the even ones are kept. With one, a triangle must also be inside the
// boundary ring on its own, so a hole drawn outside the boundary cuts nothing
// and adds nothing. Triangles touching the super-triangle never survive. The
// result is in ascending id order.
func (m *Mesh) trim(rings map[Edge]bool, boundary map[Edge]bool) []TriangleID {
	depth := m.ringDepths(rings)
	var outer []int
	if boundary != nil {
		outer = m.ringDepths(boundary)
	}
	var keep []TriangleID
	for i := range m.triangles {
		tri := &m.triangles[i]
		if !tri.live || tri.IsAuxiliary() {
			continue
		}
		d := depth[i]
		if d < 0 {
			fatalf("triangle %d is not reachable from the super-triangle", i)
		}
		if boundary == nil {
			if d%2 == 0 {
				keep = append(keep, TriangleID(i))
			}
			continue
		}
		if d%2 == 1 && outer[i]%2 == 1 {
			keep = append(keep, TriangleID(i))
		}
	}
	return keep
}

// Breadth first search by depth, seeded with every triangle touching the
// super-triangle at depth zero.
func (m *Mesh) ringDepths(rings map[Edge]bool) []int {
	depth := make([]int, len(m.triangles))
	for i := range depth {
		depth[i] = -1
	}
	var level []TriangleID
	for i := range m.triangles {
		if m.triangles[i].live && m.triangles[i].IsAuxiliary() {
			depth[i] = 0
			level = append(level, TriangleID(i))
		}
	}

	for d := 0; len(level) > 0; d++ {
		var deeper []TriangleID
		// The level grows while we scan it
		for i := 0; i < len(level); i++ {
			tri := &m.triangles[level[i]]
			for e := 0; e < 3; e++ {
				n := tri.N[e]
				if n == NoTriangle || depth[n] >= 0 {
					continue
				}
				if rings[tri.Edge(e).Key()] {
					deeper = append(deeper, n)
				} else {
					depth[n] = d
					level = append(level, n)
				}
			}
		}
		level = level[:0]
		for _, n := range deeper {
			if depth[n] < 0 {
				depth[n] = d + 1
				level = append(level, n)
			}
		}
	}
	return depth
}
