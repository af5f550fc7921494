package clique

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// runState carries the per-run safety net shared by all frames, including the
// frames of concurrent branch tasks.
type runState struct {
	ctx     context.Context
	budget  int64
	frames  atomic.Int64
	pruned  atomic.Int64
	skipped atomic.Int64
}

// enter is called at the top of every frame: cancellation first, then budget.
func (rs *runState) enter() error {
	select {
	case <-rs.ctx.Done():
		return rs.ctx.Err()
	default:
	}
	if n := rs.frames.Add(1); rs.budget > 0 && n > rs.budget {
		return ErrNodeBudgetExceeded
	}

	return nil
}

// splitter is a reference walker whose top frame can be cut into independent
// branch tasks.
type splitter interface {
	root() error
	split() ([]func() error, error)
}

// runBranches executes w sequentially, or with up to workers goroutines when
// workers > 1. The first task error cancels the remaining tasks and is returned.
func runBranches(rs *runState, w splitter, workers int) error {
	if workers <= 1 {
		return w.root()
	}

	tasks, err := w.split()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(rs.ctx)
	g.SetLimit(workers)
	rs.ctx = gctx
	for _, task := range tasks {
		g.Go(task)
	}

	return g.Wait()
}
