package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/adjacency"
)

func TestNewSparse_NegativeOrder(t *testing.T) {
	s, err := adjacency.NewSparse(-1, nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, adjacency.ErrNegativeOrder)
}

func TestNewSparse_OutOfRange(t *testing.T) {
	cases := []struct {
		name string
		e    adjacency.Edge
	}{
		{"NegativeU", adjacency.Edge{U: -1, V: 0}},
		{"TooLargeV", adjacency.Edge{U: 0, V: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := adjacency.NewSparse(3, []adjacency.Edge{tc.e})
			assert.ErrorIs(t, err, adjacency.ErrVertexOutOfRange)
		})
	}
}

func TestNewSparse_Empty(t *testing.T) {
	s, err := adjacency.NewSparse(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Order())
	assert.Equal(t, 0, s.EdgeCount())
	assert.Empty(t, s.Vertices())
	assert.Empty(t, s.Edges())
}

// TestNewSparse_Normalizes checks that loops, duplicates and mirrored edges collapse
// and that every neighbor list ends up sorted.
func TestNewSparse_Normalizes(t *testing.T) {
	s, err := adjacency.NewSparse(4, []adjacency.Edge{
		{U: 3, V: 0}, {U: 0, V: 3}, {U: 2, V: 2}, {U: 1, V: 0}, {U: 0, V: 2}, {U: 2, V: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, s.Neighbors(0))
	assert.Equal(t, []int{0}, s.Neighbors(1))
	assert.Equal(t, []int{0}, s.Neighbors(2))
	assert.Equal(t, []int{0}, s.Neighbors(3))
	assert.Equal(t, 3, s.EdgeCount())
	assert.Equal(t, 3, s.MaxDegree())
	assert.Equal(t, []adjacency.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}, s.Edges())
}

func TestNewSparseFromLists_Symmetrizes(t *testing.T) {
	// Vertex 2 lists 0 but 0 does not list 2; vertex 1 lists itself.
	s, err := adjacency.NewSparseFromLists([][]int{{1}, {0, 1}, {0}})
	require.NoError(t, err)

	assert.True(t, s.Connected(0, 2))
	assert.True(t, s.Connected(2, 0))
	assert.False(t, s.Connected(1, 1), "self-loops are dropped")
	assert.Equal(t, 2, s.EdgeCount())

	_, err = adjacency.NewSparseFromLists([][]int{{5}})
	assert.ErrorIs(t, err, adjacency.ErrVertexOutOfRange)
}

func TestSparse_QueriesOutOfRange(t *testing.T) {
	s, err := adjacency.NewSparse(2, []adjacency.Edge{{U: 0, V: 1}})
	require.NoError(t, err)

	assert.Nil(t, s.Neighbors(7))
	assert.Equal(t, 0, s.Degree(-1))
	assert.False(t, s.Connected(0, 9))
	assert.False(t, s.Connected(-1, 0))
}

// TestSparse_NeighborsCapacityClipped guards the read-only view: appending to a
// returned row must not overwrite the next row.
func TestSparse_NeighborsCapacityClipped(t *testing.T) {
	s, err := adjacency.NewSparse(3, []adjacency.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)

	row := s.Neighbors(0)
	_ = append(row, 42)
	assert.Equal(t, []int{0, 2}, s.Neighbors(1))
}

func TestSparse_Intersect(t *testing.T) {
	s, err := adjacency.NewSparse(5, []adjacency.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4}})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 4}, s.Intersect([]int{1, 2, 4}, 0))
	assert.Equal(t, 2, s.IntersectCount([]int{1, 2, 4}, 0))
	assert.Empty(t, s.Intersect([]int{1, 2, 4}, 2))
}
