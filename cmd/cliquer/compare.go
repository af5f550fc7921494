package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/graphio"
)

func newCompareCmd(f *cliFlags) *cobra.Command {
	var against string
	cmd := &cobra.Command{
		Use:   "compare [flags] <graph-file>",
		Short: "Compare a best-effort variant with the reference search",
		Long: `Runs the sparse reference search and the variant named by --against on the
same graph, then prints every maximal clique the variant missed. Missing
cliques are expected for the adaptive variants and do not fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, log, err := setup(cmd, f)
			if err != nil {
				return err
			}
			variant, err := clique.ParseVariant(against)
			if err != nil {
				return err
			}
			g, err := loadGraph(ctx, cfg, args[0])
			if err != nil {
				return err
			}

			ref, err := search(ctx, g, clique.VariantSparsePivot, append(cfg.Options(), clique.WithCollect(true)))
			if err != nil {
				return errors.Wrap(err, "reference search")
			}

			opts := append(cfg.Options(), clique.WithCollect(true))
			if !variant.Complete() {
				// best-effort variants are always sequential
				opts = append(opts, clique.WithWorkers(1))
			}
			order, err := initialOrder(cfg, g)
			if err != nil {
				return err
			}
			if order != nil {
				opts = append(opts, clique.WithInitialOrder(order))
			}
			got, err := search(ctx, g, variant, opts)
			if err != nil {
				return errors.Wrapf(err, "%s search", variant)
			}

			missing := clique.Missing(ref.Cliques, got.Cliques)
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "Reference (%s): %d cliques, max size %d\n", ref.Variant, ref.Count, ref.MaxSize); err != nil {
				return err
			}
			if _, err = fmt.Fprintf(out, "Candidate (%s): %d cliques, max size %d\n", got.Variant, got.Count, got.MaxSize); err != nil {
				return err
			}
			if _, err = fmt.Fprintf(out, "Missing: %d\n", len(missing)); err != nil {
				return err
			}
			if err = graphio.WriteCliques(out, missing); err != nil {
				return err
			}

			if len(missing) > 0 {
				log.WithFields(logrus.Fields{
					"variant": got.Variant,
					"missing": len(missing),
				}).Warn("variant under-reports maximal cliques")
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&against, "against", clique.VariantAdaptivePivot.String(), "variant to check against the reference")

	return cmd
}
