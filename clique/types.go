package clique

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	// ErrNilGraph is returned when a nil adjacency model is passed to an Enumerate function.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrNodeBudgetExceeded indicates the search expanded more frames than WithNodeBudget allows.
	ErrNodeBudgetExceeded = errors.New("clique: node budget exceeded")

	// ErrParallelUnsupported indicates WithWorkers > 1 on a variant that shares the
	// order state across branches.
	ErrParallelUnsupported = errors.New("clique: variant does not support parallel branches")

	// ErrInvalidOrder indicates an initial order that is not a permutation of 0..n-1.
	ErrInvalidOrder = errors.New("clique: initial order must be a permutation of the vertex ids")

	// ErrUnknownVariant indicates an unrecognized variant name or value.
	ErrUnknownVariant = errors.New("clique: unknown variant")

	// ErrEmptyCandidates indicates ChoosePivot was called with P and X both empty.
	ErrEmptyCandidates = errors.New("clique: pivot requested with empty P and X")

	// ErrIncompleteSearch marks a result produced by a best-effort variant; its
	// clique list may omit maximal cliques.
	ErrIncompleteSearch = errors.New("clique: search is not guaranteed complete")
)

// Variant selects the enumeration algorithm.
type Variant int

const (
	// VariantSparsePivot is the reference pivoting search over sorted neighbor lists.
	VariantSparsePivot Variant = iota
	// VariantDensePivot is the reference pivoting search over 64-bit adjacency masks.
	VariantDensePivot
	// VariantAdaptivePivot is pivoting plus skip-mask reordering (best-effort).
	VariantAdaptivePivot
	// VariantSimpleAdaptive is order-driven extension with skip-mask reordering (best-effort).
	VariantSimpleAdaptive
	// VariantSparsePlain is the search over sorted neighbor lists without a
	// pivot: every candidate in P is branched on.
	VariantSparsePlain
	// VariantDensePlain is VariantSparsePlain over 64-bit adjacency masks.
	VariantDensePlain
)

var variantNames = map[Variant]string{
	VariantSparsePivot:    "sparse",
	VariantDensePivot:     "dense",
	VariantAdaptivePivot:  "adaptive",
	VariantSimpleAdaptive: "simple-adaptive",
	VariantSparsePlain:    "sparse-plain",
	VariantDensePlain:     "dense-plain",
}

// String returns the mode-selector name of v.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return fmt.Sprintf("Variant(%d)", int(v))
}

// Complete reports whether v is guaranteed to report every maximal clique.
func (v Variant) Complete() bool {
	switch v {
	case VariantSparsePivot, VariantDensePivot, VariantSparsePlain, VariantDensePlain:
		return true
	default:
		return false
	}
}

// ParseVariant maps a mode-selector name ("sparse", "dense", "adaptive",
// "simple-adaptive", "sparse-plain", "dense-plain") to its Variant. Matching
// is case-insensitive.
func ParseVariant(name string) (Variant, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == want {
			return v, nil
		}
	}

	return 0, fmt.Errorf("clique: %q: %w", name, ErrUnknownVariant)
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	return []Variant{
		VariantSparsePivot, VariantDensePivot, VariantAdaptivePivot,
		VariantSimpleAdaptive, VariantSparsePlain, VariantDensePlain,
	}
}

// Option configures an enumeration run.
type Option func(*Options)

// Options holds the configurable parameters of an enumeration run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Timeout, if positive, bounds the run with a deadline derived from Ctx.
	Timeout time.Duration

	// NodeBudget, if positive, caps the number of recursion frames.
	NodeBudget int64

	// DegreePruning removes candidates whose degree is below |R| (default true).
	DegreePruning bool

	// InitialOrder, if non-nil, orders the top-level branches (complete variants)
	// or seeds the global order (adaptive variants). Must be a permutation of 0..n-1.
	InitialOrder []int

	// Workers > 1 runs the top-level branches of the complete variants concurrently.
	Workers int

	// Collect keeps accepted cliques in Result.Cliques (default true).
	Collect bool

	// VerifyMaximal makes the sink reject cliques that are not maximal in the graph.
	VerifyMaximal bool

	// Dedup forces equal-or-subset deduplication in the sink. It is always on for
	// the adaptive variants.
	Dedup bool

	// OnClique, if non-nil, receives every accepted clique (sorted, caller-owned).
	// Returning an error aborts the search with that error.
	OnClique func(c []int) error
}

// DefaultOptions returns Options with a background context, degree pruning on,
// collection on, sequential execution and no limits.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		DegreePruning: true,
		Workers:       1,
		Collect:       true,
	}
}

// WithContext sets the context checked at the top of every frame.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout bounds the run duration. Non-positive values disable the deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithNodeBudget caps the number of recursion frames; 0 means unlimited.
// Panics on a negative budget.
func WithNodeBudget(frames int64) Option {
	if frames < 0 {
		panic("clique: WithNodeBudget(frames<0)")
	}
	return func(o *Options) {
		o.NodeBudget = frames
	}
}

// WithDegreePruning toggles the degree filter applied to P in every frame.
func WithDegreePruning(enabled bool) Option {
	return func(o *Options) {
		o.DegreePruning = enabled
	}
}

// WithInitialOrder sets the top-level branch order (complete variants) or the
// initial global order (adaptive variants). The slice is copied.
func WithInitialOrder(order []int) Option {
	cp := slices.Clone(order)
	return func(o *Options) {
		o.InitialOrder = cp
	}
}

// WithWorkers sets the number of goroutines used for top-level branches.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("clique: WithWorkers(k<1)")
	}
	return func(o *Options) {
		o.Workers = k
	}
}

// WithCollect toggles keeping accepted cliques in Result.Cliques.
func WithCollect(enabled bool) Option {
	return func(o *Options) {
		o.Collect = enabled
	}
}

// WithVerifyMaximal makes the sink reject non-maximal cliques.
func WithVerifyMaximal() Option {
	return func(o *Options) {
		o.VerifyMaximal = true
	}
}

// WithDedup forces equal-or-subset deduplication for the complete variants.
func WithDedup() Option {
	return func(o *Options) {
		o.Dedup = true
	}
}

// WithOnClique installs a hook invoked for every accepted clique.
func WithOnClique(fn func(c []int) error) Option {
	return func(o *Options) {
		o.OnClique = fn
	}
}

// Result summarizes an enumeration run.
type Result struct {
	// Variant is the algorithm that produced the result.
	Variant Variant

	// Cliques holds accepted cliques as sorted id slices, in report order.
	// Empty when WithCollect(false) was set.
	Cliques [][]int

	// Count is the number of accepted cliques.
	Count int

	// MaxSize is the size of the largest accepted clique.
	MaxSize int

	// Frames is the number of recursion frames entered.
	Frames int64

	// Pruned is the number of candidates removed by degree pruning.
	Pruned int64

	// Skipped is the number of branch candidates skipped because the order state
	// marked them covered (adaptive variants only).
	Skipped int64

	// Discarded is the number of reports dropped as equal to or a subset of a
	// recorded clique.
	Discarded int

	// Rejected is the number of reports dropped by WithVerifyMaximal.
	Rejected int

	// Complete is true only when a complete variant finished without error.
	Complete bool

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Sorted returns a copy of r.Cliques ordered lexicographically.
func (r *Result) Sorted() [][]int {
	out := make([][]int, len(r.Cliques))
	copy(out, r.Cliques)
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}

// CheckComplete returns ErrIncompleteSearch unless r came from a complete variant
// that ran to the end.
func (r *Result) CheckComplete() error {
	if r.Complete {
		return nil
	}

	return fmt.Errorf("clique: %s run: %w", r.Variant, ErrIncompleteSearch)
}
