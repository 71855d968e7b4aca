package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/config"
	"github.com/soypat/sierpinski/operator"
	"github.com/spf13/cobra"
)

func newMenuCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the operators enabled by the preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			file := config.Default()
			if root.config != "" {
				var err error
				file, err = config.Load(root.config)
				if err != nil {
					return err
				}
			}
			reg := operator.NewRegistry(operator.Preferences{
				EnableSierpinski: file.Preferences.EnableSierpinski,
			})
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tMODES\tDEPTH\tSCALE")
			for _, op := range reg.Menu() {
				modes := make([]string, len(op.Kinds))
				for i, k := range op.Kinds {
					modes[i] = modeName(k)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d-%d\t%g-%g\n", op.ID, op.Label,
					strings.Join(modes, ","), op.MinDepth, op.MaxDepth, op.MinScale, op.MaxScale)
			}
			return w.Flush()
		},
	}
}

func newCountCmd() *cobra.Command {
	var mode string
	var depth int
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of leaves and triangles generated for a mode and depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := sierpinski.ParseKind(mode)
			if err != nil {
				return err
			}
			if depth < 0 {
				return fmt.Errorf("%w: negative depth %d", sierpinski.ErrInvalidInput, depth)
			}
			leaves := sierpinski.LeafCount(kind, depth)
			fmt.Fprintf(cmd.OutOrStdout(), "%s depth %d: %d leaves, %d triangles\n",
				modeName(kind), depth, leaves, leaves*kind.NumFaces())
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "3D", "2D or 3D")
	cmd.Flags().IntVar(&depth, "depth", 3, "recursion depth")
	return cmd
}

func modeName(k sierpinski.Kind) string {
	if k == sierpinski.Triangle {
		return "2D"
	}
	return "3D"
}
