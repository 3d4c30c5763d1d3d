package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
)

// The input document. ghodss/yaml goes through encoding/json, so the json tags
// apply to YAML too.
type document struct {
	Points      [][2]float64 `json:"points"`
	Constraints [][2]int     `json:"constraints,omitempty"`
	Boundary    []int        `json:"boundary,omitempty"`
	Holes       [][]int      `json:"holes,omitempty"`
}

func parseDocument(data []byte) (*document, error) {
	doc := &document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "parsing input")
	}
	if len(doc.Points) == 0 {
		return nil, errors.New("input has no points")
	}
	return doc, nil
}

func readDocumentFile(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return parseDocument(data)
}

// Read "x y" lines. Empty lines end a group, and with rings set each group
// becomes a ring over its own points.
func readLines(in io.Reader, rings bool) (*document, error) {
	doc := &document{}
	var group []int
	endGroup := func() {
		if rings && len(group) > 0 {
			if doc.Boundary == nil {
				doc.Boundary = group
			} else {
				doc.Holes = append(doc.Holes, group)
			}
		}
		group = nil
	}

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			endGroup()
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		group = append(group, len(doc.Points))
		doc.Points = append(doc.Points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	endGroup()
	if len(doc.Points) == 0 {
		return nil, errors.New("input has no points")
	}
	return doc, nil
}

func parsePoint(line string) ([2]float64, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return [2]float64{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return [2]float64{}, errors.WithStack(err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return [2]float64{}, errors.WithStack(err)
	}
	return [2]float64{x, y}, nil
}

func (doc *document) geometry() ([]delaunay.Point, []delaunay.Edge, []delaunay.VertexID, [][]delaunay.VertexID) {
	points := make([]delaunay.Point, len(doc.Points))
	for i, p := range doc.Points {
		points[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	var constraints []delaunay.Edge
	for _, c := range doc.Constraints {
		constraints = append(constraints, delaunay.Edge{A: delaunay.VertexID(c[0]), B: delaunay.VertexID(c[1])})
	}
	var holes [][]delaunay.VertexID
	for _, hole := range doc.Holes {
		holes = append(holes, vertexIDs(hole))
	}
	return points, constraints, vertexIDs(doc.Boundary), holes
}

func vertexIDs(ids []int) []delaunay.VertexID {
	if ids == nil {
		return nil
	}
	result := make([]delaunay.VertexID, len(ids))
	for i, id := range ids {
		result[i] = delaunay.VertexID(id)
	}
	return result
}
