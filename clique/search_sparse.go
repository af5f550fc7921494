package clique

import (
	"slices"

	"github.com/katalvlaran/lvclique/adjacency"
)

// sparseWalker runs the reference search over sorted neighbor lists. With
// plain set it branches on all of P instead of P \ N(pivot).
type sparseWalker struct {
	g     *adjacency.Sparse
	opts  Options
	run   *runState
	sink  *Sink
	rank  []int // rank[v] = position of v in InitialOrder; nil for ascending ids
	plain bool
}

// expand processes one frame (R, P, X). The frame owns p and x: children get
// freshly intersected copies, and v moves from P to X only in this frame.
func (w *sparseWalker) expand(r, p, x []int) error {
	// 1. Cancellation and budget
	if err := w.run.enter(); err != nil {
		return err
	}

	// 2. Terminal state: R cannot be extended and nothing explored extends it
	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			_, err := w.sink.Report(r)
			return err
		}
		return nil
	}

	// 3. Degree pruning
	if w.opts.DegreePruning && len(r) > 0 {
		p = w.prune(p, len(r))
	}

	// 4. Infeasible frame: only explored extensions remain
	if len(p) == 0 {
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
		p = adjacency.RemoveSorted(p, v)
		x = adjacency.InsertSorted(x, v)
	}

	return nil
}

// branches returns the snapshot P \ N(pivot), or a copy of P when plain. At
// the top frame it follows the initial order when one was given.
func (w *sparseWalker) branches(p, x []int, top bool) ([]int, error) {
	var out []int
	if w.plain {
		// the caller shrinks p in place while walking the snapshot
		out = slices.Clone(p)
	} else {
		pivot, err := ChoosePivot(w.g, p, x)
		if err != nil {
			return nil, err
		}
		out = adjacency.DifferenceSorted(p, w.g.Neighbors(pivot))
	}
	if top && w.rank != nil {
		slices.SortFunc(out, func(a, b int) int { return w.rank[a] - w.rank[b] })
	}

	return out, nil
}

// prune drops candidates with deg(v) < size; they cannot join a clique holding R.
func (w *sparseWalker) prune(p []int, size int) []int {
	kept := p[:0:0]
	for _, v := range p {
		if w.g.Degree(v) < size {
			w.run.pruned.Add(1)
			continue
		}
		kept = append(kept, v)
	}

	return kept
}

// root runs the whole search from R = {}, P = V, X = {}.
func (w *sparseWalker) root() error {
	return w.expand(nil, w.g.Vertices(), nil)
}

// split performs the top frame and returns one independent task per branch.
// Each task owns its R, P and X.
func (w *sparseWalker) split() ([]func() error, error) {
	if err := w.run.enter(); err != nil {
		return nil, err
	}
	p := w.g.Vertices()
	var x []int
	if len(p) == 0 {
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
		p = adjacency.RemoveSorted(p, v)
		x = adjacency.InsertSorted(x, v)
	}

	return tasks, nil
}
