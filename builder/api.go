// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order
//     against a fresh Draft, then freezes the Draft into an adjacency.Sparse.
//   - Every constructor appends its own block of vertices, so composing several
//     constructors yields their disjoint union.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/adjacency"
)

// Constructor appends one topology block to d using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching d and return sentinel errors.
//   - Allocate their vertices with d.AddBlock and only connect vertices of that block.
//   - Emit edges in a stable order for the same config.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting immutable graph.
// With WithRelabel the final vertex ids are permuted by cfg.rng.
//
// Complexity: Σ cost of constructors + O(n + m log m) for the CSR freeze.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*adjacency.Sparse, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.relabel {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildGraph: relabel: %w", ErrNeedRandSource)
		}
		d.permute(cfg.rng.Perm(d.n))
	}

	g, err := adjacency.NewSparse(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: freeze: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}

// BuildDense is BuildGraph followed by the bitmask conversion. It fails with
// adjacency.ErrOversizedGraphForDenseModel when the result has more than 64 vertices.
func BuildDense(bopts []BuilderOption, cons ...Constructor) (*adjacency.Dense, error) {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		return nil, err
	}

	d, err := adjacency.DenseFromSparse(g)
	if err != nil {
		return nil, fmt.Errorf("BuildDense: %w", err)
	}

	return d, nil
}
