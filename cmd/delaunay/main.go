// Command delaunay triangulates a set of points and prints the triangles, one
// per line, as three vertex ids.
//
// Input is either a YAML (or JSON) document:
//
//	points: [[0, 0], [4, 0], [4, 4], [0, 4], [2, 1]]
//	constraints: [[0, 2]]
//	boundary: [0, 1, 2, 3]
//	holes: []
//
// or, on stdin, newline separated points in the form "x y". With --polygons,
// groups of points separated by an empty line are rings: the first is the
// boundary, and the rest are holes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input     string
	polygons  bool
	tolerance float64
	png       string
	imgcat    bool
	scale     float64
	labels    bool
	dump      bool
	verbose   bool
}

func parseArgs(args []string) (*config, error) {
	c := &config{}
	app := kingpin.New("delaunay", "Delaunay and constrained Delaunay triangulation of a point set.")
	app.Flag("input", "YAML or JSON document to read instead of stdin.").Short('i').StringVar(&c.input)
	app.Flag("polygons", "Treat empty line separated groups on stdin as boundary and hole rings.").BoolVar(&c.polygons)
	app.Flag("tolerance", "Distance under which points are merged.").Default("0").Float64Var(&c.tolerance)
	app.Flag("png", "Render the triangulation to this file.").StringVar(&c.png)
	app.Flag("imgcat", "Show the rendering in the terminal (iTerm only).").BoolVar(&c.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64Var(&c.scale)
	app.Flag("labels", "Label triangles in the rendering.").BoolVar(&c.labels)
	app.Flag("dump", "Print the mesh with neighbor names after the triangles.").BoolVar(&c.dump)
	app.Flag("verbose", "Log construction details to stderr.").Short('v').BoolVar(&c.verbose)
	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func run(c *config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := logrus.New()
	logger.SetOutput(stderr)
	if c.verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	var doc *document
	var err error
	if c.input != "" {
		doc, err = readDocumentFile(c.input)
	} else {
		doc, err = readLines(stdin, c.polygons)
	}
	if err != nil {
		return err
	}

	points, constraints, boundary, holes := doc.geometry()
	result, err := delaunay.Build(points, constraints, boundary,
		delaunay.WithTolerance(c.tolerance),
		delaunay.WithHoles(holes...),
		delaunay.WithLogger(logger),
	)
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}

	for _, tri := range result.Triangles() {
		fmt.Fprintf(stdout, "%d %d %d\n", tri[0], tri[1], tri[2])
	}
	if c.dump {
		fmt.Fprintln(stdout, result.Mesh().Dump())
	}

	if c.png != "" || c.imgcat {
		return render(result, c, stdout)
	}
	return nil
}

func main() {
	c, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(c, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
