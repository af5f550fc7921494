// Package metrics records clique-enumeration runs as Prometheus metrics.
//
// A Recorder owns a private registry, so several recorders (one per test, one
// per CLI invocation) never collide. The CLI exports the registry in the
// node-exporter textfile format with WriteTextfile.
//
// All methods are safe for concurrent use.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/lvclique/clique"
)

const (
	namespace = "lvclique"

	// VariantLabel is the label carrying clique.Variant.String().
	VariantLabel = "variant"
	// OutcomeLabel is "complete", "partial" or "error".
	OutcomeLabel = "outcome"
)

// Outcome label values.
const (
	OutcomeComplete = "complete"
	OutcomePartial  = "partial"
	OutcomeError    = "error"
)

// Recorder holds the run metrics.
type Recorder struct {
	reg *prometheus.Registry

	// RunsTotal counts runs by variant and outcome.
	RunsTotal *prometheus.CounterVec

	// CliquesTotal counts accepted cliques by variant.
	CliquesTotal *prometheus.CounterVec

	// FramesTotal counts expanded search frames by variant.
	FramesTotal *prometheus.CounterVec

	// CliqueSize is the size distribution of accepted cliques.
	CliqueSize prometheus.Histogram

	// RunDurationSeconds measures wall time per run.
	RunDurationSeconds *prometheus.HistogramVec

	// MaxCliqueSize is the largest clique of the latest run per variant.
	MaxCliqueSize *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Enumeration runs by variant and outcome.",
		}, []string{VariantLabel, OutcomeLabel}),
		CliquesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cliques_total",
			Help:      "Accepted maximal cliques.",
		}, []string{VariantLabel}),
		FramesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Expanded search frames.",
		}, []string{VariantLabel}),
		CliqueSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clique_size",
			Help:      "Size of accepted cliques.",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		}),
		RunDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of enumeration runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{VariantLabel}),
		MaxCliqueSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_clique_size",
			Help:      "Largest clique size of the latest run.",
		}, []string{VariantLabel}),
	}
}

// Observe records a finished run. res may be nil when the run failed before
// the search started; err is the error returned with it.
func (r *Recorder) Observe(variant clique.Variant, res *clique.Result, err error) {
	label := variant.String()
	switch {
	case err != nil:
		r.RunsTotal.WithLabelValues(label, OutcomeError).Inc()
	case res != nil && res.Complete:
		r.RunsTotal.WithLabelValues(label, OutcomeComplete).Inc()
	default:
		r.RunsTotal.WithLabelValues(label, OutcomePartial).Inc()
	}
	if res == nil {
		return
	}

	r.CliquesTotal.WithLabelValues(label).Add(float64(res.Count))
	r.FramesTotal.WithLabelValues(label).Add(float64(res.Frames))
	r.RunDurationSeconds.WithLabelValues(label).Observe(res.Elapsed.Seconds())
	r.MaxCliqueSize.WithLabelValues(label).Set(float64(res.MaxSize))
}

// ObserveClique records the size of one accepted clique. It has the shape of
// a clique.WithOnClique hook.
func (r *Recorder) ObserveClique(c []int) error {
	r.CliqueSize.Observe(float64(len(c)))

	return nil
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.reg.Gather()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written to a temporary name and renamed, so collectors never
// read a partial file.
func (r *Recorder) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, r.reg), "metrics: write %s", path)
}
