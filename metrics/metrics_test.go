package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/metrics"
)

func TestObserve(t *testing.T) {
	rec := metrics.NewRecorder()
	sparse := clique.VariantSparsePivot.String()

	rec.Observe(clique.VariantSparsePivot, &clique.Result{
		Variant: clique.VariantSparsePivot, Count: 5, MaxSize: 3, Frames: 11,
		Complete: true, Elapsed: 2 * time.Millisecond,
	}, nil)
	rec.Observe(clique.VariantAdaptivePivot, &clique.Result{Variant: clique.VariantAdaptivePivot, Count: 2, MaxSize: 2}, nil)
	rec.Observe(clique.VariantSparsePivot, nil, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues(sparse, metrics.OutcomeComplete)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues(sparse, metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues("adaptive", metrics.OutcomePartial)))
	assert.Equal(t, 5.0, testutil.ToFloat64(rec.CliquesTotal.WithLabelValues(sparse)))
	assert.Equal(t, 11.0, testutil.ToFloat64(rec.FramesTotal.WithLabelValues(sparse)))
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.MaxCliqueSize.WithLabelValues(sparse)))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.MaxCliqueSize.WithLabelValues("adaptive")))
}

func TestObserveClique_Hook(t *testing.T) {
	rec := metrics.NewRecorder()
	g, err := builder.BuildGraph(nil, builder.MoonMoser(3))
	require.NoError(t, err)

	res, err := clique.EnumerateSparse(g, clique.WithOnClique(rec.ObserveClique))
	require.NoError(t, err)
	rec.Observe(res.Variant, res, err)

	families, err := rec.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() != "lvclique_clique_size" {
			continue
		}
		found = true
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(27), h.GetSampleCount())
		assert.Equal(t, 81.0, h.GetSampleSum())
	}
	assert.True(t, found)
}

func TestWriteTextfile(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.Observe(clique.VariantDensePivot, &clique.Result{Count: 1, MaxSize: 1, Complete: true}, nil)

	path := filepath.Join(t.TempDir(), "lvclique.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvclique_runs_total{outcome="complete",variant="dense"} 1`)

	err = rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}

func TestRecorders_Independent(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.Observe(clique.VariantSparsePivot, &clique.Result{Complete: true}, nil)
	assert.Equal(t, 0, testutil.CollectAndCount(b.RunsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(a.RunsTotal))
}
