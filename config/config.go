// Package config loads the YAML run configuration of the cliquer command.
//
// Example file:
//
//	mode: adaptive
//	order: degeneracy
//	workers: 1
//	timeout: 30s
//	node_budget: 0
//	verify_maximal: true
//	log_level: info
//	log_format: text
//
// Unknown keys are rejected so typos surface instead of silently keeping the
// default.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/graphio"
	"github.com/katalvlaran/lvclique/logging"
	"github.com/katalvlaran/lvclique/ordering"
)

// MaxFileBytes bounds a configuration file.
const MaxFileBytes = 1 << 20

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of run settings.
type Config struct {
	Mode          string        `yaml:"mode"`
	Order         string        `yaml:"order"`
	Workers       int           `yaml:"workers"`
	Timeout       time.Duration `yaml:"timeout"`
	NodeBudget    int64         `yaml:"node_budget"`
	Print         bool          `yaml:"print"`
	VerifyMaximal bool          `yaml:"verify_maximal"`
	DegreePruning bool          `yaml:"degree_pruning"`
	LenientEdges  bool          `yaml:"lenient_edge_count"`
	MaxVertices   int           `yaml:"max_vertices"`
	LogLevel      string        `yaml:"log_level"`
	LogFormat     string        `yaml:"log_format"`
	MetricsFile   string        `yaml:"metrics_file"`
	Store         string        `yaml:"store"`
}

// Default returns the settings used when neither a file nor flags say otherwise.
func Default() Config {
	return Config{
		Mode:          clique.VariantDensePivot.String(),
		Order:         string(ordering.KindNatural),
		Workers:       1,
		DegreePruning: true,
		MaxVertices:   graphio.DefaultMaxVertices,
		LogLevel:      "info",
		LogFormat:     logging.FormatText,
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(err, path)
	}

	return cfg, nil
}

// Decode parses YAML from r on top of Default and validates the result.
// An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileBytes+1))
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read")
	}
	if len(data) > MaxFileBytes {
		return Config{}, errors.Errorf("config: larger than %d bytes", MaxFileBytes)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: decode")
	}

	return cfg, cfg.Validate()
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := clique.ParseVariant(c.Mode); err != nil {
		return errors.Wrapf(ErrInvalid, "mode: %v", err)
	}
	if _, err := ordering.ParseKind(c.Order); err != nil {
		return errors.Wrapf(ErrInvalid, "order: %v", err)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "workers=%d < 1", c.Workers)
	}
	if c.Timeout < 0 {
		return errors.Wrapf(ErrInvalid, "timeout=%s < 0", c.Timeout)
	}
	if c.MaxVertices < 0 {
		return errors.Wrapf(ErrInvalid, "max_vertices=%d < 0", c.MaxVertices)
	}
	if c.NodeBudget < 0 {
		return errors.Wrapf(ErrInvalid, "node_budget=%d < 0", c.NodeBudget)
	}
	if _, err := logging.New(c.LogLevel, c.LogFormat, io.Discard); err != nil {
		return errors.Wrapf(ErrInvalid, "logging: %v", err)
	}

	return nil
}

// Options translates the search settings into clique options. The initial
// order and collection are left to the caller: both depend on the graph and
// on what the command does with the result.
func (c Config) Options() []clique.Option {
	opts := []clique.Option{
		clique.WithWorkers(c.Workers),
		clique.WithNodeBudget(c.NodeBudget),
		clique.WithDegreePruning(c.DegreePruning),
	}
	if c.VerifyMaximal {
		opts = append(opts, clique.WithVerifyMaximal())
	}
	if c.Timeout > 0 {
		opts = append(opts, clique.WithTimeout(c.Timeout))
	}

	return opts
}
