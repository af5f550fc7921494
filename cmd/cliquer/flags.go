package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvclique/config"
)

// cliFlags holds the raw flag values; they are merged over the config file by
// resolveConfig.
type cliFlags struct {
	configPath      string
	mode            string
	order           string
	workers         int
	timeout         time.Duration
	nodeBudget      int64
	print           bool
	verifyMaximal   bool
	noDegreePruning bool
	lenient         bool
	maxVertices     int
	logLevel        string
	logFormat       string
	metricsFile     string
	store           string
}

func (f *cliFlags) register(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration")
	fs.StringVarP(&f.mode, "mode", "m", def.Mode, "search variant: dense|sparse|adaptive|simple-adaptive|dense-plain|sparse-plain")
	fs.StringVar(&f.order, "order", def.Order, "initial vertex order: natural|degree|degeneracy")
	fs.IntVarP(&f.workers, "workers", "w", def.Workers, "parallel top-level branches (complete variants only)")
	fs.DurationVar(&f.timeout, "timeout", def.Timeout, "abort the search after this long (0 = no limit)")
	fs.Int64Var(&f.nodeBudget, "node-budget", def.NodeBudget, "abort after this many search frames (0 = no limit)")
	fs.BoolVarP(&f.print, "print", "p", def.Print, "print every clique")
	fs.BoolVar(&f.verifyMaximal, "verify-maximal", def.VerifyMaximal, "reject reported cliques that are not maximal")
	fs.BoolVar(&f.noDegreePruning, "no-degree-pruning", !def.DegreePruning, "disable degree pruning")
	fs.BoolVar(&f.lenient, "lenient-edge-count", def.LenientEdges, "accept a header edge count that does not match the lists")
	fs.IntVar(&f.maxVertices, "max-vertices", def.MaxVertices, "reject graph files whose header declares more vertices")
	fs.StringVar(&f.logLevel, "log-level", def.LogLevel, "log level")
	fs.StringVar(&f.logFormat, "log-format", def.LogFormat, "log format: text|json")
	fs.StringVar(&f.metricsFile, "metrics-file", def.MetricsFile, "write Prometheus metrics to this textfile")
	fs.StringVar(&f.store, "store", def.Store, "bbolt database for run history")
}

// resolveConfig loads --config (if any) and applies every flag the user set
// explicitly on top of it.
func (f *cliFlags) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("mode", func() { cfg.Mode = f.mode })
	set("order", func() { cfg.Order = f.order })
	set("workers", func() { cfg.Workers = f.workers })
	set("timeout", func() { cfg.Timeout = f.timeout })
	set("node-budget", func() { cfg.NodeBudget = f.nodeBudget })
	set("print", func() { cfg.Print = f.print })
	set("verify-maximal", func() { cfg.VerifyMaximal = f.verifyMaximal })
	set("no-degree-pruning", func() { cfg.DegreePruning = !f.noDegreePruning })
	set("lenient-edge-count", func() { cfg.LenientEdges = f.lenient })
	set("max-vertices", func() { cfg.MaxVertices = f.maxVertices })
	set("log-level", func() { cfg.LogLevel = f.logLevel })
	set("log-format", func() { cfg.LogFormat = f.logFormat })
	set("metrics-file", func() { cfg.MetricsFile = f.metricsFile })
	set("store", func() { cfg.Store = f.store })

	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "flags")
	}

	return cfg, nil
}
