package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/ordering"
)

func newStatsCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph-file>",
		Short: "Print size, degree and degeneracy of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := setup(cmd, f)
			if err != nil {
				return err
			}
			g, err := loadGraph(ctx, cfg, args[0])
			if err != nil {
				return err
			}

			dec := ordering.Degeneracy(g)
			dense := "no"
			if g.Order() <= adjacency.MaxDenseOrder {
				dense = "yes"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"Vertices: %d\nEdges: %d\nMax Degree: %d\nDegeneracy: %d\nDense Model: %s\n",
				g.Order(), g.EdgeCount(), g.MaxDegree(), dec.Degeneracy, dense)

			return err
		},
	}
}
