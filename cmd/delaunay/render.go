package main

import (
	"io"
	"os"
	"path/filepath"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
)

func render(result *delaunay.Triangulation, c *config, stdout io.Writer) error {
	path := c.png
	if path == "" {
		dir, err := os.MkdirTemp("", "delaunay")
		if err != nil {
			return errors.WithStack(err)
		}
		defer os.RemoveAll(dir)
		path = filepath.Join(dir, "triangulation.png")
	}

	if err := result.Render(c.scale, c.labels).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if c.imgcat {
		imgcat.CatFile(path, stdout)
	}
	return nil
}
