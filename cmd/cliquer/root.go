package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/config"
	"github.com/katalvlaran/lvclique/graphio"
	"github.com/katalvlaran/lvclique/logging"
	"github.com/katalvlaran/lvclique/metrics"
	"github.com/katalvlaran/lvclique/ordering"
	"github.com/katalvlaran/lvclique/resultstore"
)

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	root := &cobra.Command{
		Use:          "cliquer [flags] <graph-file>",
		Short:        "Enumerate the maximal cliques of an undirected graph",
		Args:         cobra.ExactArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerate(cmd, f, args[0])
		},
	}
	f.register(root.PersistentFlags())

	root.AddCommand(newCompareCmd(f), newStatsCmd(f), newHistoryCmd(f))

	return root
}

// setup resolves the configuration and attaches the logger to the command
// context.
func setup(cmd *cobra.Command, f *cliFlags) (context.Context, config.Config, logrus.FieldLogger, error) {
	cfg, err := f.resolveConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	return ctx, cfg, logger, nil
}

func loadGraph(ctx context.Context, cfg config.Config, path string) (*adjacency.Sparse, error) {
	opts := []graphio.ReadOption{graphio.WithMaxVertices(cfg.MaxVertices)}
	if cfg.LenientEdges {
		opts = append(opts, graphio.WithLenientEdgeCount())
	}

	start := time.Now()
	g, err := graphio.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).WithFields(logrus.Fields{
		"file":     path,
		"vertices": g.Order(),
		"edges":    g.EdgeCount(),
		"elapsed":  time.Since(start),
	}).Info("graph loaded")

	return g, nil
}

// initialOrder resolves cfg.Order for g; the natural order is left implicit.
func initialOrder(cfg config.Config, g *adjacency.Sparse) ([]int, error) {
	kind, err := ordering.ParseKind(cfg.Order)
	if err != nil || kind == ordering.KindNatural {
		return nil, err
	}

	return ordering.For(kind, g)
}

// sparseFallback maps each dense variant to its sparse-model twin.
var sparseFallback = map[clique.Variant]clique.Variant{
	clique.VariantDensePivot: clique.VariantSparsePivot,
	clique.VariantDensePlain: clique.VariantSparsePlain,
}

// search runs variant on g and falls back to the sparse model when the graph
// is too large for the dense one.
func search(ctx context.Context, g *adjacency.Sparse, variant clique.Variant, opts []clique.Option) (*clique.Result, error) {
	log := logging.FromContext(ctx).WithField("variant", variant)
	opts = append([]clique.Option{clique.WithContext(ctx)}, opts...)

	res, err := clique.Enumerate(g, variant, opts...)
	if fallback, ok := sparseFallback[variant]; ok && errors.Is(err, adjacency.ErrOversizedGraphForDenseModel) {
		log.WithField("vertices", g.Order()).Warnf("graph exceeds %d vertices, falling back to %s", adjacency.MaxDenseOrder, fallback)
		variant = fallback
		log = log.WithField("variant", variant)
		res, err = clique.Enumerate(g, variant, opts...)
	}
	if res != nil {
		log.WithFields(logrus.Fields{
			"cliques":   res.Count,
			"max_size":  res.MaxSize,
			"frames":    res.Frames,
			"pruned":    res.Pruned,
			"skipped":   res.Skipped,
			"discarded": res.Discarded,
			"rejected":  res.Rejected,
			"elapsed":   res.Elapsed,
		}).Info("search finished")
	}

	return res, err
}

func runEnumerate(cmd *cobra.Command, f *cliFlags, path string) error {
	ctx, cfg, log, err := setup(cmd, f)
	if err != nil {
		return err
	}
	g, err := loadGraph(ctx, cfg, path)
	if err != nil {
		return err
	}

	variant, err := clique.ParseVariant(cfg.Mode)
	if err != nil {
		return err
	}
	order, err := initialOrder(cfg, g)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts = append(opts, clique.WithCollect(cfg.Print || cfg.Store != ""))
	if order != nil {
		opts = append(opts, clique.WithInitialOrder(order))
	}
	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, clique.WithOnClique(rec.ObserveClique))
	}

	res, runErr := search(ctx, g, variant, opts)

	if res != nil {
		if err = report(cmd.OutOrStdout(), cfg, res); err != nil {
			return err
		}
		if runErr == nil {
			if err = res.CheckComplete(); err != nil {
				log.WithError(err).Warn("results may omit maximal cliques; run 'cliquer compare' to measure the gap")
			}
		}
	}

	if rec != nil {
		v := variant
		if res != nil {
			v = res.Variant
		}
		rec.Observe(v, res, runErr)
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.WithError(err).Error("metrics export failed")
		} else {
			log.WithField("file", cfg.MetricsFile).Debug("metrics written")
		}
	}

	if cfg.Store != "" && res != nil {
		if err = saveRun(ctx, cfg, path, g, res, runErr); err != nil {
			log.WithError(err).Error("storing run failed")
		}
	}

	return errors.Wrap(runErr, "search")
}

func report(w io.Writer, cfg config.Config, res *clique.Result) error {
	if cfg.Print {
		if err := graphio.WriteCliques(w, res.Sorted()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total Maximal Cliques Found: %d\nMaximum Clique Size: %d\n", res.Count, res.MaxSize)

	return errors.Wrap(err, "write summary")
}

func saveRun(ctx context.Context, cfg config.Config, path string, g *adjacency.Sparse, res *clique.Result, runErr error) error {
	st, err := resultstore.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	run := resultstore.RunFromResult(res, runErr)
	run.Source = path
	run.Vertices, run.Edges = g.Order(), g.EdgeCount()
	run.Order = cfg.Order

	// the search context may already be canceled; the summary is still worth keeping
	id, err := st.Save(context.WithoutCancel(ctx), run, res.Sorted())
	if err != nil {
		return err
	}
	logging.FromContext(ctx).WithField("run", id).Info("run stored")

	return nil
}
