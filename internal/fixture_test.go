package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures into shapes. This is not a full (or even
// correct) svg parser. It finds every polygon in the SVG, and each one becomes
// a ring of the shape, in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

// Points plus rings of indices into them. The first ring is the boundary, and
// the rest are holes (or islands in holes, and so on).
type shape struct {
	points []Point
	rings  [][]VertexID
}

func (s *shape) addRing(ring []Point) {
	ids := make([]VertexID, len(ring))
	for i, p := range ring {
		ids[i] = VertexID(len(s.points))
		s.points = append(s.points, p)
	}
	s.rings = append(s.rings, ids)
}

func (s *shape) ringPoints() [][]Point {
	result := make([][]Point, len(s.rings))
	for i, ring := range s.rings {
		for _, v := range ring {
			result[i] = append(result[i], s.points[v])
		}
	}
	return result
}

func (s *shape) build(t *testing.T, options ...Option) *Triangulation {
	options = append(options, WithHoles(s.rings[1:]...))
	result, err := Build(s.points, nil, s.rings[0], options...)
	require.NoError(t, err)
	return result
}

func LoadFixture(name string) *shape {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	result := &shape{}
	for _, polygonEl := range polygons {
		pointString := polygonEl.Attributes["points"]
		pointStrings := strings.Split(pointString, " ")
		ring := make([]Point, 0, len(pointStrings))
		for _, pointString := range pointStrings {
			if pointString == "" {
				continue
			}

			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pointStrings[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseFloat(pointStrings[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			ring = append(ring, Point{X: x, Y: y})
		}
		result.addRing(ring)
	}
	return result
}

// Some ad hoc code specified fixtures

func starRing(x, y, outerRadius, innerRadius float64) []Point {
	var points []Point
	for i := 0; i < 10; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return points
}

func reversed(ring []Point) []Point {
	result := make([]Point, len(ring))
	for i, p := range ring {
		result[len(ring)-1-i] = p
	}
	return result
}

func SimpleStar() *shape {
	result := &shape{}
	result.addRing(starRing(0, 0, 5, 2))
	return result
}

func SquareWithHole() *shape {
	result := &shape{}
	result.addRing([]Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	})
	result.addRing([]Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	})
	return result
}

func StarOutline() *shape {
	result := &shape{}
	result.addRing(starRing(0, 0, 10, 5))
	result.addRing(reversed(starRing(0, 0, 8, 3)))
	return result
}

func StarStripes() *shape {
	// Multiple inset stars with alternating winding
	result := &shape{}
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		r := outerRadius * scale
		ring := starRing(0, 0, r, r*indentScale)
		if i%2 == 1 {
			ring = reversed(ring)
		}
		result.addRing(ring)
		scale *= gapScale
	}
	return result
}

func MultiLayeredHoles() *shape {
	// Multiple holes which contain filled shapes inside.
	result := &shape{}
	// Outer star
	result.addRing(starRing(0, 0, 10, 7))
	// Top hole and the island in it
	result.addRing(reversed(starRing(1.5, 5, 3, 2)))
	result.addRing(starRing(1.5, 5, 2, 1))
	// Bottom hole
	result.addRing(reversed(starRing(1.8, -5, 3, 2)))
	result.addRing(starRing(1.8, -5, 2, 1))
	// Left hole
	result.addRing(reversed(starRing(-3, 0, 4, 2)))
	result.addRing(starRing(-3, 0, 3, 1))
	return result
}

// Uniformly random points in [0, size)², from a fixed seed.
func randomPoints(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	return points
}

// Integer grid, row by row from the origin. Full of cocircular quadruples.
func gridPoints(width, height int) []Point {
	var points []Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

func unitSquare() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}
