package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, stdin string, args ...string) (string, string, error) {
	c, err := parseArgs(args)
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	err = run(c, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseArgs(t *testing.T) {
	c, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, c.scale)
	assert.Equal(t, 0.0, c.tolerance)
	assert.False(t, c.verbose)

	c, err = parseArgs([]string{"-i", "points.yaml", "--png", "out.png", "--scale", "5", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "points.yaml", c.input)
	assert.Equal(t, "out.png", c.png)
	assert.Equal(t, 5.0, c.scale)
	assert.True(t, c.verbose)

	_, err = parseArgs([]string{"--scale", "big"})
	assert.Error(t, err)
}

func TestParseDocument(t *testing.T) {
	yamlDoc := `
points: [[0, 0], [4, 0], [4, 4], [0, 4], [2, 1]]
constraints: [[0, 2]]
boundary: [0, 1, 2, 3]
`
	jsonDoc := `{"points": [[0, 0], [4, 0], [4, 4], [0, 4], [2, 1]], "constraints": [[0, 2]], "boundary": [0, 1, 2, 3]}`
	for _, data := range []string{yamlDoc, jsonDoc} {
		doc, err := parseDocument([]byte(data))
		require.NoError(t, err)
		points, constraints, boundary, holes := doc.geometry()
		assert.Len(t, points, 5)
		assert.Equal(t, delaunay.Point{X: 2, Y: 1}, points[4])
		assert.Equal(t, []delaunay.Edge{{A: 0, B: 2}}, constraints)
		assert.Equal(t, []delaunay.VertexID{0, 1, 2, 3}, boundary)
		assert.Empty(t, holes)
	}

	_, err := parseDocument([]byte("points: []"))
	assert.Error(t, err)
	_, err = parseDocument([]byte("points: [[0, 0"))
	assert.Error(t, err)
}

func TestReadLines(t *testing.T) {
	input := "0 0\n10 0\n10 10\n0 10\n\n4 4\n4 6\n6 6\n6 4\n"

	doc, err := readLines(strings.NewReader(input), false)
	require.NoError(t, err)
	assert.Len(t, doc.Points, 8)
	assert.Nil(t, doc.Boundary)

	doc, err = readLines(strings.NewReader(input), true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, doc.Boundary)
	assert.Equal(t, [][]int{{4, 5, 6, 7}}, doc.Holes)

	_, err = readLines(strings.NewReader("0 0\n1\n"), false)
	assert.ErrorContains(t, err, "line 2")
	_, err = readLines(strings.NewReader("0 zero\n"), false)
	assert.Error(t, err)
	_, err = readLines(strings.NewReader("\n\n"), false)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	stdout, _, err := runWith(t, "0 0\n1 0\n1 1\n0 1\n")
	require.NoError(t, err)
	assert.Equal(t, "0 1 3\n1 2 3\n", stdout)

	t.Run("document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "square.yaml")
		doc := "points: [[0, 0], [1, 0], [1, 1], [0, 1]]\nconstraints: [[0, 2]]\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
		stdout, _, err := runWith(t, "", "--input", path)
		require.NoError(t, err)
		assert.Equal(t, "0 1 2\n0 2 3\n", stdout)
	})

	t.Run("polygons", func(t *testing.T) {
		stdout, _, err := runWith(t, "0 0\n10 0\n10 10\n0 10\n\n4 4\n4 6\n6 6\n6 4\n", "--polygons")
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 8)
	})

	t.Run("verbose", func(t *testing.T) {
		_, stderr, err := runWith(t, "0 0\n1 0\n1 1\n0 1\n", "-v")
		require.NoError(t, err)
		assert.Contains(t, stderr, "built triangulation")
	})

	t.Run("bad input", func(t *testing.T) {
		_, _, err := runWith(t, "0 0\n1 1\n2 2\n")
		assert.ErrorIs(t, err, delaunay.ErrCollinearPoints)
		assert.Contains(t, err.Error(), "triangulating")
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.png")
		_, _, err := runWith(t, "0 0\n1 0\n1 1\n0 1\n", "--png", path, "--labels")
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	})
}
