package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/maze-solver/maze"
	"github.com/lixenwraith/maze-solver/render"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in maze names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range maze.Names() {
				l, err := maze.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %dx%d\n", name, l.Rows, l.Cols)
			}
			return nil
		},
	}
}

func newLegendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Describe the glyphs used in rendered grids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), render.Legend())
			return err
		},
	}
}

type generateOptions struct {
	rows, cols int
	braid      float64
	seed       int64
	sep        string
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random maze in the solver's input format",
		Long: `Carve a maze with a recursive backtracker and optionally braid it.
Even dimensions are rounded down to odd. The shortest path length is
written to stderr so the output can be piped straight into a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, size := utf8.DecodeRuneInString(o.sep)
			if size == 0 || size != len(o.sep) {
				return fmt.Errorf("--sep must be a single character, got %q", o.sep)
			}
			l, err := maze.Generate(maze.Config{
				Rows:     o.rows,
				Cols:     o.cols,
				Braiding: o.braid,
				Seed:     o.seed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.Join(sep))
			fmt.Fprintf(cmd.ErrOrStderr(), "shortest path: %d cells\n", len(maze.ShortestPath(l)))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.rows, "rows", 21, "maze height")
	f.IntVar(&o.cols, "cols", 41, "maze width")
	f.Float64Var(&o.braid, "braid", 0, "fraction of dead ends to open, 0 to 1")
	f.Int64Var(&o.seed, "seed", 0, "random seed (0 = time based)")
	f.StringVar(&o.sep, "sep", string(maze.DefaultSeparator), "row separator")
	return cmd
}
