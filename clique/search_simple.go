package clique

import "github.com/katalvlaran/lvclique/adjacency"

// simpleWalker is the order-driven extension search: no P, X or pivot. A frame
// scans the live global order from start, extends R by every uncovered vertex
// adjacent to all of R, and reports R as a leaf when no extension happened.
// Leaves are not guaranteed maximal and cliques can be missed.
type simpleWalker struct {
	g     *adjacency.Sparse
	run   *runState
	sink  *Sink
	state *OrderState
}

func (w *simpleWalker) expand(r []int, start int) error {
	if err := w.run.enter(); err != nil {
		return err
	}

	expanded := false
	// The order is rebuilt whenever a leaf is reported, so positions are read
	// from the live state on every step.
	for i := start; i < w.state.Len(); i++ {
		v := w.state.At(i)
		if w.state.Covered(v) {
			w.run.skipped.Add(1)
			continue
		}
		if !w.adjacentToAll(r, v) {
			continue
		}
		expanded = true
		child := append(r[:len(r):len(r)], v)
		if err := w.expand(child, i+1); err != nil {
			return err
		}
	}

	if expanded || len(r) == 0 {
		return nil
	}
	if _, err := w.sink.Report(r); err != nil {
		return err
	}
	w.state.ReorderAfterClique(r)

	return nil
}

func (w *simpleWalker) adjacentToAll(r []int, v int) bool {
	if w.g.Degree(v) < len(r) {
		return false
	}
	for _, u := range r {
		if !w.g.Connected(u, v) {
			return false
		}
	}

	return true
}

func (w *simpleWalker) root() error {
	return w.expand(nil, 0)
}
