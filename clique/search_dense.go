package clique

import (
	"slices"

	"github.com/katalvlaran/lvclique/adjacency"
)

// denseWalker runs the reference search over 64-bit adjacency masks.
// Candidate sets are plain values, so every frame naturally owns its P and X.
type denseWalker struct {
	g     *adjacency.Dense
	deg   []int
	opts  Options
	run   *runState
	sink  *Sink
	rank  []int
	plain bool
}

func newDenseWalker(g *adjacency.Dense, opts Options, run *runState, sink *Sink, rank []int, plain bool) *denseWalker {
	deg := make([]int, g.Order())
	for v := range deg {
		deg[v] = g.Degree(v)
	}

	return &denseWalker{g: g, deg: deg, opts: opts, run: run, sink: sink, rank: rank, plain: plain}
}

func (w *denseWalker) expand(r []int, p, x adjacency.Mask) error {
	// 1. Cancellation and budget
	if err := w.run.enter(); err != nil {
		return err
	}

	// 2. Terminal state
	if p.Empty() && x.Empty() {
		if len(r) > 0 {
			_, err := w.sink.Report(r)
			return err
		}
		return nil
	}

	// 3. Degree pruning
	if w.opts.DegreePruning && len(r) > 0 {
		for rest := p; !rest.Empty(); {
			v := rest.Lowest()
			rest = rest.Without(v)
			if w.deg[v] < len(r) {
				p = p.Without(v)
				w.run.pruned.Add(1)
			}
		}
	}

	// 4. Infeasible frame
	if p.Empty() {
		return nil
	}

	// 5. Branch on P \ N(pivot), or on all of P when plain
	branches, err := w.branches(p, x, len(r) == 0)
	if err != nil {
		return err
	}
	for _, v := range branches {
		child := append(r[:len(r):len(r)], v)
		if err = w.expand(child, w.g.Intersect(p, v), w.g.Intersect(x, v)); err != nil {
			return err
		}
		p = p.Without(v)
		x = x.With(v)
	}

	return nil
}

func (w *denseWalker) branches(p, x adjacency.Mask, top bool) ([]int, error) {
	if !w.plain {
		pivot, err := ChoosePivotDense(w.g, p, x)
		if err != nil {
			return nil, err
		}
		p = p.AndNot(w.g.Neighbors(pivot))
	}
	out := p.Slice()
	if top && w.rank != nil {
		slices.SortFunc(out, func(a, b int) int { return w.rank[a] - w.rank[b] })
	}

	return out, nil
}

func (w *denseWalker) root() error {
	return w.expand(nil, w.g.Full(), 0)
}

func (w *denseWalker) split() ([]func() error, error) {
	if err := w.run.enter(); err != nil {
		return nil, err
	}
	p, x := w.g.Full(), adjacency.Mask(0)
	if p.Empty() {
		return nil, nil
	}

	branches, err := w.branches(p, x, true)
	if err != nil {
		return nil, err
	}
	tasks := make([]func() error, 0, len(branches))
	for _, v := range branches {
		r, cp, cx := []int{v}, w.g.Intersect(p, v), w.g.Intersect(x, v)
		tasks = append(tasks, func() error { return w.expand(r, cp, cx) })
		p = p.Without(v)
		x = x.With(v)
	}

	return tasks, nil
}
