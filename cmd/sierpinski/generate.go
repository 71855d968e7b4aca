package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/config"
	"github.com/soypat/sierpinski/operator"
	"github.com/soypat/sierpinski/preview"
	"github.com/soypat/sierpinski/render"
	"github.com/spf13/cobra"
)

func newGenerateCmd(root *rootFlags, logger func() *slog.Logger) *cobra.Command {
	var job config.Job
	var depth int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fractal meshes from flags or from every job in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			file := config.Default()
			if root.config != "" {
				var err error
				file, err = config.Load(root.config)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("depth") {
				job.Depth = &depth
			}
			if root.config == "" || job.STL != "" || job.OBJ != "" || job.PNG != "" {
				file.Jobs = append(file.Jobs, job)
			}
			if err := file.Validate(); err != nil {
				return err
			}
			reg := operator.NewRegistry(operator.Preferences{
				EnableSierpinski: file.Preferences.EnableSierpinski,
			})
			for i, job := range file.Jobs {
				if err := runJob(log.With(slog.Int("job", i)), reg, job); err != nil {
					return fmt.Errorf("job %d: %w", i, err)
				}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&job.Operator, "op", operator.Sierpinski.ID, "operator ID")
	flags.StringVar(&job.Mode, "mode", "", "2D or 3D (default is the operator default)")
	flags.StringVar(&job.Orientation, "orientation", "", "plane of 2D gaskets: XY, XZ or YZ")
	flags.IntVar(&depth, "depth", 0, "recursion depth (default is the operator default)")
	flags.Float64Var(&job.Scale, "scale", 0, "scale of the initial simplex (default is the operator default)")
	flags.StringVar(&job.STL, "stl", "", "binary STL output path")
	flags.StringVar(&job.OBJ, "obj", "", "Wavefront OBJ output path")
	flags.BoolVar(&job.Weld, "weld", false, "merge shared vertices in OBJ output")
	flags.StringVar(&job.PNG, "png", "", "PNG preview output path")
	return cmd
}

// jobProperties resolves the operator and its properties for a job,
// filling unset values with the operator defaults.
func jobProperties(reg *operator.Registry, job config.Job) (operator.Operator, operator.Properties, error) {
	id := job.Operator
	if id == "" {
		id = operator.Sierpinski.ID
	}
	op, ok := reg.Lookup(id)
	if !ok {
		return op, operator.Properties{}, fmt.Errorf("operator %q not registered or disabled", id)
	}
	p := op.Defaults()
	var err error
	if job.Mode != "" {
		p.Kind, err = sierpinski.ParseKind(job.Mode)
		if err != nil {
			return op, p, err
		}
	}
	if job.Orientation != "" {
		p.Orientation, err = sierpinski.ParseOrientation(job.Orientation)
		if err != nil {
			return op, p, err
		}
	}
	if job.Depth != nil {
		p.Depth = *job.Depth
	}
	if job.Scale != 0 {
		p.Scale = job.Scale
	}
	return op, p, op.Check(p)
}

func runJob(log *slog.Logger, reg *operator.Registry, job config.Job) error {
	op, p, err := jobProperties(reg, job)
	if err != nil {
		return err
	}
	req, err := op.Request(p)
	if err != nil {
		return err
	}
	start := time.Now()
	leaves, err := req.Leaves()
	if err != nil {
		return err
	}
	log.Debug("generated", slog.String("op", op.ID), slog.String("kind", p.Kind.String()),
		slog.Int("depth", p.Depth), slog.Float64("scale", p.Scale), slog.Int("leaves", len(leaves)),
		slog.Duration("elapsed", time.Since(start)))
	bb := render.Bounds(leaves)
	log.Debug("bounds", slog.Any("center", bb.Center()), slog.Any("size", bb.Size()))

	if job.STL != "" {
		if err = render.CreateSTL(job.STL, render.NewLeafRenderer(leaves)); err != nil {
			return err
		}
		log.Info("wrote STL", slog.String("path", job.STL), slog.Int("triangles", len(leaves)*p.Kind.NumFaces()))
	}
	if job.OBJ != "" {
		err = render.CreateOBJ(job.OBJ, leaves, render.OBJOptions{Weld: job.Weld})
		if err != nil {
			return err
		}
		log.Info("wrote OBJ", slog.String("path", job.OBJ), slog.Bool("weld", job.Weld))
	}
	if job.PNG != "" {
		err = preview.SavePNG(job.PNG, render.LeafTriangles(leaves), preview.DefaultView)
		if err != nil {
			return err
		}
		log.Info("wrote PNG", slog.String("path", job.PNG))
	}
	return nil
}
