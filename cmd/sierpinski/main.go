// Command sierpinski generates Sierpinski gasket meshes as STL, OBJ and PNG files.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	verbose bool
	config  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:          "sierpinski",
		Short:        "Generate Sierpinski triangle and tetrahedron gasket meshes",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "job file (.yaml, .toml or .json)")
	logger := func() *slog.Logger {
		level := slog.LevelInfo
		if flags.verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	root.AddCommand(
		newGenerateCmd(&flags, logger),
		newMenuCmd(&flags),
		newCountCmd(),
		newAnimateCmd(logger),
	)
	return root
}
