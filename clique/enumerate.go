package clique

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvclique/adjacency"
)

// session bundles what every variant needs for one run.
type session struct {
	variant Variant
	opts    Options
	run     *runState
	sink    *Sink
	rank    []int
	start   time.Time
	cancel  context.CancelFunc
}

// newSession resolves options, validates them against model m and builds the sink.
func newSession(m adjacency.Model, variant Variant, opts []Option) (*session, error) {
	// 1. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Validate the initial order and the parallelism request
	if err := checkPermutation(m.Order(), o.InitialOrder); err != nil {
		return nil, err
	}
	if o.Workers > 1 && !variant.Complete() {
		return nil, fmt.Errorf("clique: %s with %d workers: %w", variant, o.Workers, ErrParallelUnsupported)
	}

	// 3. Deadline
	ctx, cancel := o.Ctx, context.CancelFunc(func() {})
	if o.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
	}

	// 4. Sink: reorder-based variants always deduplicate
	cfg := SinkConfig{
		Dedup:    o.Dedup || !variant.Complete(),
		Collect:  o.Collect,
		OnClique: o.OnClique,
	}
	if o.VerifyMaximal {
		cfg.Verify = m
	}

	s := &session{
		variant: variant,
		opts:    o,
		run:     &runState{ctx: ctx, budget: o.NodeBudget},
		sink:    NewSink(cfg),
		start:   time.Now(),
		cancel:  cancel,
	}
	if o.InitialOrder != nil {
		s.rank = make([]int, m.Order())
		for i, v := range o.InitialOrder {
			s.rank[v] = i
		}
	}

	return s, nil
}

// finish releases the deadline and assembles the result. The result is
// returned even when err is non-nil so callers can inspect partial output.
func (s *session) finish(err error) (*Result, error) {
	s.cancel()

	res := &Result{
		Variant: s.variant,
		Frames:  s.run.frames.Load(),
		Pruned:  s.run.pruned.Load(),
		Skipped: s.run.skipped.Load(),
		Elapsed: time.Since(s.start),
	}
	s.sink.fill(res)
	res.Complete = err == nil && s.variant.Complete()

	return res, err
}

// EnumerateSparse reports every maximal clique of g with the reference pivoting
// search over sorted neighbor lists.
//
// Steps per frame:
//  1. Cancellation and node-budget check.
//  2. P = X = {}: report R (unless empty).
//  3. Degree pruning: drop v ∈ P with deg(v) < |R|.
//  4. P = {}: return.
//  5. Pick the pivot, branch on each v ∈ P \ N(pivot), then move v from P to X.
//
// On error the partial Result is returned together with the error.
func EnumerateSparse(g *adjacency.Sparse, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := newSession(g, VariantSparsePivot, opts)
	if err != nil {
		return nil, err
	}

	w := &sparseWalker{g: g, opts: s.opts, run: s.run, sink: s.sink, rank: s.rank}

	return s.finish(runBranches(s.run, w, s.opts.Workers))
}

// EnumerateDense is EnumerateSparse over the bitmask model.
func EnumerateDense(g *adjacency.Dense, opts ...Option) (*Result, error) {
	return enumerateDense(g, VariantDensePivot, opts)
}

// EnumerateSparsePlain is EnumerateSparse without the pivot: step 5 branches
// on every v ∈ P. It explores more frames and serves as a cross-check for the
// pivot rule.
func EnumerateSparsePlain(g *adjacency.Sparse, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := newSession(g, VariantSparsePlain, opts)
	if err != nil {
		return nil, err
	}

	w := &sparseWalker{g: g, opts: s.opts, run: s.run, sink: s.sink, rank: s.rank, plain: true}

	return s.finish(runBranches(s.run, w, s.opts.Workers))
}

// EnumerateDensePlain is EnumerateSparsePlain over the bitmask model.
func EnumerateDensePlain(g *adjacency.Dense, opts ...Option) (*Result, error) {
	return enumerateDense(g, VariantDensePlain, opts)
}

func enumerateDense(g *adjacency.Dense, variant Variant, opts []Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := newSession(g, variant, opts)
	if err != nil {
		return nil, err
	}

	w := newDenseWalker(g, s.opts, s.run, s.sink, s.rank, variant == VariantDensePlain)

	return s.finish(runBranches(s.run, w, s.opts.Workers))
}

// EnumerateAdaptive runs the pivoting search with skip-mask reordering. After
// every reported clique its vertices are marked covered and moved to the back of
// the global order; covered vertices are never branched on again.
//
// Best-effort: maximal cliques that reuse a covered vertex may be missed, and
// Result.Complete is always false. Combine with WithVerifyMaximal or compare
// against EnumerateSparse with Missing when completeness matters.
func EnumerateAdaptive(g *adjacency.Sparse, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := newSession(g, VariantAdaptivePivot, opts)
	if err != nil {
		return nil, err
	}
	st, err := NewOrderState(g.Order(), s.opts.InitialOrder)
	if err != nil {
		s.cancel()
		return nil, err
	}

	w := &adaptiveWalker{g: g, opts: s.opts, run: s.run, sink: s.sink, state: st}

	return s.finish(w.root())
}

// EnumerateSimpleAdaptive runs the order-driven extension search with
// skip-mask reordering. Its leaves are cliques but not necessarily maximal;
// use WithVerifyMaximal to filter them. Result.Complete is always false.
func EnumerateSimpleAdaptive(g *adjacency.Sparse, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := newSession(g, VariantSimpleAdaptive, opts)
	if err != nil {
		return nil, err
	}
	st, err := NewOrderState(g.Order(), s.opts.InitialOrder)
	if err != nil {
		s.cancel()
		return nil, err
	}

	w := &simpleWalker{g: g, run: s.run, sink: s.sink, state: st}

	return s.finish(w.root())
}

// Enumerate dispatches to the variant selected by v. For the dense variants the
// bitmask model is built from g first, which fails with
// adjacency.ErrOversizedGraphForDenseModel when g has more than 64 vertices.
func Enumerate(g *adjacency.Sparse, v Variant, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	switch v {
	case VariantSparsePivot:
		return EnumerateSparse(g, opts...)
	case VariantDensePivot, VariantDensePlain:
		d, err := adjacency.DenseFromSparse(g)
		if err != nil {
			return nil, fmt.Errorf("clique: dense model: %w", err)
		}
		return enumerateDense(d, v, opts)
	case VariantSparsePlain:
		return EnumerateSparsePlain(g, opts...)
	case VariantAdaptivePivot:
		return EnumerateAdaptive(g, opts...)
	case VariantSimpleAdaptive:
		return EnumerateSimpleAdaptive(g, opts...)
	default:
		return nil, fmt.Errorf("clique: %s: %w", v, ErrUnknownVariant)
	}
}
