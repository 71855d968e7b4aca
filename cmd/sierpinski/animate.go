package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/soypat/sierpinski/config"
	"github.com/soypat/sierpinski/operator"
	"github.com/soypat/sierpinski/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

func newAnimateCmd(logger func() *slog.Logger) *cobra.Command {
	var (
		job        config.Job
		depth      int
		start, end int
		period     float64
		axis       string
		outDir     string
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Write one STL per frame of a sine scale animation of a gasket",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			if cmd.Flags().Changed("depth") {
				job.Depth = &depth
			}
			ax, ok := map[string]int{"X": 0, "Y": 1, "Z": 2, "x": 0, "y": 1, "z": 2}[axis]
			if !ok {
				return fmt.Errorf("unknown axis %q", axis)
			}
			frames, err := operator.SineScale(start, end, period, ax)
			if err != nil {
				return err
			}
			reg := operator.NewRegistry(operator.DefaultPreferences())
			op, p, err := jobProperties(reg, job)
			if err != nil {
				return err
			}
			var scene operator.Scene
			if _, err = op.Execute(p, &scene); err != nil {
				return err
			}
			if err = os.MkdirAll(outDir, 0777); err != nil {
				return err
			}
			model := make([]render.Triangle3, 0, scene.Len()*p.Kind.NumFaces())
			for _, k := range frames {
				model = model[:0]
				for _, obj := range scene.Objects() {
					obj = k.Apply(obj)
					for _, f := range obj.Faces {
						model = append(model, render.Triangle3{V: [3]r3.Vec{obj.Vertices[f[0]], obj.Vertices[f[1]], obj.Vertices[f[2]]}})
					}
				}
				path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.stl", k.Frame))
				if err = writeSTLFile(path, model); err != nil {
					return err
				}
				log.Debug("wrote frame", slog.Int("frame", k.Frame), slog.String("path", path))
			}
			log.Info("wrote animation", slog.String("dir", outDir), slog.Int("frames", len(frames)))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&job.Operator, "op", operator.Sierpinski.ID, "operator ID")
	flags.StringVar(&job.Mode, "mode", "", "2D or 3D (default is the operator default)")
	flags.StringVar(&job.Orientation, "orientation", "", "plane of 2D gaskets: XY, XZ or YZ")
	flags.IntVar(&depth, "depth", 0, "recursion depth (default is the operator default)")
	flags.Float64Var(&job.Scale, "scale", 0, "scale of the initial simplex (default is the operator default)")
	flags.IntVar(&start, "start", 1, "first frame")
	flags.IntVar(&end, "end", 120, "last frame")
	flags.Float64Var(&period, "period", 30, "frames per radian of the sine")
	flags.StringVar(&axis, "axis", "Y", "scaled axis: X, Y or Z")
	flags.StringVarP(&outDir, "out", "o", "frames", "output directory")
	return cmd
}

func writeSTLFile(path string, model []render.Triangle3) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err = render.WriteSTL(fp, model); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return fp.Close()
}
