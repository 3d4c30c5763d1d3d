package internal

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Padding around the mesh so that edges on the hull are visible
const dbgDrawPadding = 20

// Largest drawing, in pixels on either side, not counting padding. A larger
// drawing is scaled down to fit.
const maxRenderSize = 4096

type triangleKey struct {
	mesh *Mesh
	t    TriangleID
}

// Helper to draw and print the mesh in the terminal (iTerm only) for debugging.
// Triangles touching the super-triangle are not drawn.
func (m *Mesh) dbgDraw(scale float64) {
	c := m.render(scale, true)
	// Save to temp file
	c.SavePNG("/tmp/mesh.png")
	// Print to terminal
	imgcat.CatFile("/tmp/mesh.png", os.Stdout)
}

// Draw the triangulation onto a new context, with the y axis pointing up.
func (tr *Triangulation) Render(scale float64, labels bool) *gg.Context {
	return tr.mesh.render(scale, labels)
}

func (m *Mesh) render(scale float64, labels bool) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	var finite []TriangleID
	for _, t := range m.LiveTriangles() {
		tri := &m.triangles[t]
		if tri.IsAuxiliary() {
			continue
		}
		finite = append(finite, t)
		for _, v := range tri.V {
			p := m.points[v]
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if len(finite) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	if span := math.Max(maxX-minX, maxY-minY); scale*span > maxRenderSize {
		scale = maxRenderSize / span
	}
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range finite {
		tri := &m.triangles[t]
		m.tracePath(c, tri)
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	// Constrained edges on top
	c.SetLineWidth(3)
	c.SetRGB(1, 0.3, 0.3)
	for _, t := range finite {
		tri := &m.triangles[t]
		for i := 0; i < 3; i++ {
			if !tri.Constrained[i] {
				continue
			}
			a, b := m.points[tri.V[next(i)]], m.points[tri.V[prev(i)]]
			c.DrawLine(a.X, a.Y, b.X, b.Y)
			c.Stroke()
		}
	}

	if labels {
		c.SetRGB(1, 1, 1)
		for _, t := range finite {
			tri := &m.triangles[t]
			var centerX, centerY float64
			for _, v := range tri.V {
				centerX += m.points[v].X / 3
				centerY += m.points[v].Y / 3
			}
			// We have to go back to identity to draw the text, so get the point in native coordinates
			centerX, centerY = c.TransformPoint(centerX, centerY)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(triangleKey{m, t}), centerX, centerY, 0.5, 0.5)
			c.Pop()
		}
	}
	return c
}

func (m *Mesh) tracePath(c *gg.Context, tri *Triangle) {
	first := m.points[tri.V[0]]
	c.MoveTo(first.X, first.Y)
	for _, v := range tri.V[1:] {
		p := m.points[v]
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Readable name for a triangle, colored by kind: cyan if it touches the
// super-triangle, yellow if it has a constrained edge, otherwise green.
func (m *Mesh) DbgName(t TriangleID) string {
	name := dbg.Name(triangleKey{m, t})
	tri := &m.triangles[t]
	switch {
	case tri.IsAuxiliary():
		return aurora.Cyan(name).String()
	case tri.Constrained[0] || tri.Constrained[1] || tri.Constrained[2]:
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}

// One line per live triangle, with vertices and neighbor names.
func (m *Mesh) Dump() string {
	var lines []string
	for _, t := range m.LiveTriangles() {
		tri := &m.triangles[t]
		var neighbors []string
		for _, n := range tri.N {
			if n == NoTriangle {
				neighbors = append(neighbors, dbg.Name(nil))
			} else {
				neighbors = append(neighbors, m.DbgName(n))
			}
		}
		lines = append(lines, fmt.Sprintf("%s %v <%s>", m.DbgName(t), tri.V, strings.Join(neighbors, ", ")))
	}
	return strings.Join(lines, "\n")
}
