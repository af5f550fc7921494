package adjacency

import "errors"

// MaxDenseOrder is the largest vertex count the Dense model can hold: one bit per
// vertex in a single uint64 row.
const MaxDenseOrder = 64

var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("adjacency: vertex count must be non-negative")

	// ErrNilGraph indicates a nil *Sparse passed to a conversion.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("adjacency: vertex id out of range")

	// ErrOversizedGraphForDenseModel indicates the dense bitmask model was requested
	// for more vertices than fit in one machine word. Use the Sparse model instead.
	ErrOversizedGraphForDenseModel = errors.New("adjacency: graph too large for dense model")
)

// Edge is an undirected pair of vertex ids.
type Edge struct {
	U, V int
}

// Model is the read-only adjacency view shared by Sparse and Dense.
// Verification helpers and orderings accept a Model so they work on either form.
type Model interface {
	// Order returns the vertex count n.
	Order() int

	// Degree returns the number of distinct neighbors of v (0 for ids outside [0, n)).
	Degree(v int) int

	// Connected reports whether u and v are adjacent. It is false for u == v.
	Connected(u, v int) bool
}

var (
	_ Model = (*Sparse)(nil)
	_ Model = (*Dense)(nil)
)
