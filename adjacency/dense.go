package adjacency

import "fmt"

// Dense is an immutable undirected graph with at most MaxDenseOrder vertices,
// stored as one adjacency Mask per vertex. rows[v].Has(u) ⇔ u and v are adjacent.
// No row has its own bit set.
type Dense struct {
	n    int
	rows []Mask
}

// NewDense builds a Dense graph from an undirected edge list.
// Returns ErrOversizedGraphForDenseModel when n > MaxDenseOrder (the caller is
// expected to switch to NewSparse), ErrNegativeOrder for n < 0 and
// ErrVertexOutOfRange for endpoints outside [0, n). Self-loops are dropped.
// Complexity: O(n + m).
func NewDense(n int, edges []Edge) (*Dense, error) {
	if err := checkDenseOrder(n); err != nil {
		return nil, err
	}

	d := &Dense{n: n, rows: make([]Mask, n)}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("adjacency: edge #%d (%d,%d) with n=%d: %w", i, e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			continue
		}
		d.rows[e.U] = d.rows[e.U].With(e.V)
		d.rows[e.V] = d.rows[e.V].With(e.U)
	}

	return d, nil
}

// DenseFromSparse converts a Sparse graph into its bitmask form.
// Returns ErrNilGraph for a nil s and ErrOversizedGraphForDenseModel when s has
// more than MaxDenseOrder vertices.
// Complexity: O(n + m).
func DenseFromSparse(s *Sparse) (*Dense, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	if err := checkDenseOrder(s.Order()); err != nil {
		return nil, err
	}

	d := &Dense{n: s.Order(), rows: make([]Mask, s.Order())}
	for v := 0; v < d.n; v++ {
		d.rows[v] = MaskOf(s.Neighbors(v)...)
	}

	return d, nil
}

func checkDenseOrder(n int) error {
	if n < 0 {
		return fmt.Errorf("adjacency: n=%d: %w", n, ErrNegativeOrder)
	}
	if n > MaxDenseOrder {
		return fmt.Errorf("adjacency: n=%d > %d: %w", n, MaxDenseOrder, ErrOversizedGraphForDenseModel)
	}

	return nil
}

// Order returns the number of vertices n.
func (d *Dense) Order() int { return d.n }

// Full returns the mask of all vertices, the initial candidate set P.
func (d *Dense) Full() Mask { return FullMask(d.n) }

// Neighbors returns N(v) as a mask, or 0 when v is out of range.
func (d *Dense) Neighbors(v int) Mask {
	if v < 0 || v >= d.n {
		return 0
	}

	return d.rows[v]
}

// Degree returns |N(v)|.
func (d *Dense) Degree(v int) int { return d.Neighbors(v).Count() }

// Connected reports whether u and v are adjacent. Complexity: O(1).
func (d *Dense) Connected(u, v int) bool { return d.Neighbors(u).Has(v) }

// Intersect returns set ∩ N(v). Complexity: O(1).
func (d *Dense) Intersect(set Mask, v int) Mask { return set & d.Neighbors(v) }

// EdgeCount returns the number of undirected edges.
func (d *Dense) EdgeCount() int {
	total := 0
	for _, r := range d.rows {
		total += r.Count()
	}

	return total / 2
}
