package clique

import "github.com/katalvlaran/lvclique/adjacency"

// adaptiveWalker is the pivoting search driven by an OrderState: branch
// candidates follow the live global order and covered vertices are skipped
// without moving them to X. Skipping can hide maximal cliques, so the variant
// is best-effort.
type adaptiveWalker struct {
	g     *adjacency.Sparse
	opts  Options
	run   *runState
	sink  *Sink
	state *OrderState
}

func (w *adaptiveWalker) expand(r, p, x []int) error {
	if err := w.run.enter(); err != nil {
		return err
	}

	if len(p) == 0 && len(x) == 0 {
		return w.terminal(r)
	}

	if w.opts.DegreePruning && len(r) > 0 {
		kept := p[:0:0]
		for _, v := range p {
			if w.g.Degree(v) < len(r) {
				w.run.pruned.Add(1)
				continue
			}
			kept = append(kept, v)
		}
		p = kept
	}
	if len(p) == 0 {
		return nil
	}

	pivot, err := ChoosePivot(w.g, p, x)
	if err != nil {
		return err
	}
	branches := adjacency.DifferenceSorted(p, w.g.Neighbors(pivot))
	cands := w.state.OrderedCandidates(branches)
	w.run.skipped.Add(int64(len(branches) - len(cands)))
	for _, v := range cands {
		// a clique reported by an earlier sibling may have covered v
		if w.state.Covered(v) {
			w.run.skipped.Add(1)
			continue
		}
		child := append(r[:len(r):len(r)], v)
		if err = w.expand(child, w.g.Intersect(p, v), w.g.Intersect(x, v)); err != nil {
			return err
		}
		p = adjacency.RemoveSorted(p, v)
		x = adjacency.InsertSorted(x, v)
	}

	return nil
}

// terminal reports R and reorders the global state. The reorder happens for
// every non-empty terminal R, accepted or not.
func (w *adaptiveWalker) terminal(r []int) error {
	if len(r) == 0 {
		return nil
	}
	if _, err := w.sink.Report(r); err != nil {
		return err
	}
	w.state.ReorderAfterClique(r)

	return nil
}

func (w *adaptiveWalker) root() error {
	return w.expand(nil, w.g.Vertices(), nil)
}
