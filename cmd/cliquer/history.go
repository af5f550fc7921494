package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvclique/graphio"
	"github.com/katalvlaran/lvclique/resultstore"
)

func newHistoryCmd(f *cliFlags) *cobra.Command {
	var (
		limit   int
		showRun string
	)
	cmd := &cobra.Command{
		Use:   "history --store <file>",
		Short: "List stored runs, or print the cliques of one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, _, err := setup(cmd, f)
			if err != nil {
				return err
			}
			if cfg.Store == "" {
				return errors.New("history: --store is required")
			}
			st, err := resultstore.Open(cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if showRun != "" {
				cliques, err := st.Cliques(showRun)
				if err != nil {
					return err
				}
				return graphio.WriteCliques(out, cliques)
			}

			runs, err := st.List()
			if err != nil {
				return err
			}
			if limit > 0 && len(runs) > limit {
				runs = runs[:limit]
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tVARIANT\tCLIQUES\tMAX\tCOMPLETE\tELAPSED\tSOURCE")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%t\t%s\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Variant, r.Count, r.MaxSize,
					r.Complete, r.Elapsed.Round(time.Microsecond), r.Source)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many runs (0 = all)")
	cmd.Flags().StringVar(&showRun, "run", "", "print the stored cliques of this run id")

	return cmd
}
