// Command meshdump writes a generated mesh as Wavefront OBJ.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"planeviz/internal/meshing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("meshdump failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("meshdump", flag.ContinueOnError)
	shape := fs.String("shape", "sphere", "mesh to write: sphere, quad or point")
	slices := fs.Int("slices", 20, "sphere segments around the Y axis")
	stacks := fs.Int("stacks", 20, "sphere segments from pole to pole")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		m   *meshing.Mesh
		err error
	)
	switch *shape {
	case "sphere":
		m, err = meshing.Sphere(*slices, *stacks)
	case "quad":
		m = meshing.Quad()
	case "point":
		m = meshing.Point()
	default:
		err = fmt.Errorf("unknown shape %q", *shape)
	}
	if err != nil {
		return err
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := meshing.WriteOBJ(w, m, *shape); err != nil {
		return err
	}
	slog.Debug("wrote mesh", "shape", *shape, "vertices", m.VertexCount(), "indices", m.IndexCount())
	return nil
}
