// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	assert.Nil(t, newBuilderConfig().rng)

	// 2. WithSeed produces identical streams for identical seeds
	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	// 3. WithRand installs the given generator; later options win
	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	assert.Same(t, r, c.rng)
}

// TestOptionPanics verifies that option constructors reject nil inputs.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
}

// TestRelabelOption verifies the relabel flag default and override.
func TestRelabelOption(t *testing.T) {
	assert.False(t, newBuilderConfig().relabel)
	assert.True(t, newBuilderConfig(WithRelabel()).relabel)
}

// TestDraftBlocks verifies AddBlock bookkeeping and edge validation.
func TestDraftBlocks(t *testing.T) {
	d := &Draft{}
	assert.Equal(t, 0, d.AddBlock(3))
	assert.Equal(t, 3, d.AddBlock(2))
	assert.Equal(t, 5, d.Order())

	assert.NoError(t, d.AddEdge(0, 4))
	assert.ErrorIs(t, d.AddEdge(0, 5), ErrConstructFailed)
	assert.ErrorIs(t, d.AddEdge(2, 2), ErrConstructFailed)
	assert.Equal(t, 1, d.EdgeCount())
}
