package adjacency

import (
	"fmt"
	"slices"
)

// Sparse is an immutable undirected graph in compressed sparse row form.
//
// Neighbors of v occupy nbrs[offsets[v]:offsets[v+1]] in ascending order.
// Invariants (established by the constructors, never mutated afterwards):
//   - no self-loops, no duplicate neighbors;
//   - symmetric: u ∈ N(v) ⇔ v ∈ N(u).
//
// A Sparse value is safe for concurrent readers.
type Sparse struct {
	n       int
	edges   int
	maxDeg  int
	offsets []int
	nbrs    []int
}

// NewSparse builds a Sparse graph with n vertices from an undirected edge list.
// Self-loops are dropped, duplicate and mirrored edges collapse into one.
// Returns ErrNegativeOrder if n < 0 and ErrVertexOutOfRange for endpoints
// outside [0, n).
// Complexity: O(n + m log m) time, O(n + m) memory.
func NewSparse(n int, edges []Edge) (*Sparse, error) {
	if n < 0 {
		return nil, fmt.Errorf("adjacency: n=%d: %w", n, ErrNegativeOrder)
	}

	lists := make([][]int, n)
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("adjacency: edge #%d (%d,%d) with n=%d: %w", i, e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			continue // self-loops never take part in a clique
		}
		lists[e.U] = append(lists[e.U], e.V)
		lists[e.V] = append(lists[e.V], e.U)
	}

	return compress(lists), nil
}

// NewSparseFromLists builds a Sparse graph from per-vertex neighbor lists, the
// shape produced by the text loader. The vertex count is len(lists).
// Lists may be unsorted, one-sided or contain self-loops and repeats; the result
// is normalized to the symmetric closure.
// Complexity: O(n + m log m) time, O(n + m) memory.
func NewSparseFromLists(lists [][]int) (*Sparse, error) {
	n := len(lists)
	sym := make([][]int, n)

	var u, v int
	for u = range lists {
		for _, v = range lists[u] {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("adjacency: neighbor %d of vertex %d with n=%d: %w", v, u, n, ErrVertexOutOfRange)
			}
			if u == v {
				continue
			}
			sym[u] = append(sym[u], v)
			sym[v] = append(sym[v], u)
		}
	}

	return compress(sym), nil
}

// compress sorts and deduplicates every list in place and packs them into CSR form.
func compress(lists [][]int) *Sparse {
	n := len(lists)
	s := &Sparse{n: n, offsets: make([]int, n+1)}

	total := 0
	for v := range lists {
		slices.Sort(lists[v])
		lists[v] = slices.Compact(lists[v])
		total += len(lists[v])
		if len(lists[v]) > s.maxDeg {
			s.maxDeg = len(lists[v])
		}
	}

	s.nbrs = make([]int, 0, total)
	for v := 0; v < n; v++ {
		s.offsets[v] = len(s.nbrs)
		s.nbrs = append(s.nbrs, lists[v]...)
	}
	s.offsets[n] = len(s.nbrs)
	s.edges = total / 2

	return s
}

// Order returns the number of vertices n.
func (s *Sparse) Order() int { return s.n }

// EdgeCount returns the number of undirected edges m.
func (s *Sparse) EdgeCount() int { return s.edges }

// MaxDegree returns the largest vertex degree (0 for an edgeless graph).
func (s *Sparse) MaxDegree() int { return s.maxDeg }

// Degree returns |N(v)|, or 0 when v is outside [0, n).
// Complexity: O(1).
func (s *Sparse) Degree(v int) int {
	if v < 0 || v >= s.n {
		return 0
	}

	return s.offsets[v+1] - s.offsets[v]
}

// Neighbors returns the sorted neighbor ids of v, or nil when v is out of range.
// The slice aliases internal storage and must be treated as read-only; its
// capacity is clipped so appends by the caller never overwrite other rows.
// Complexity: O(1).
func (s *Sparse) Neighbors(v int) []int {
	if v < 0 || v >= s.n {
		return nil
	}
	lo, hi := s.offsets[v], s.offsets[v+1]

	return s.nbrs[lo:hi:hi]
}

// Connected reports whether u and v are adjacent, by binary search in the
// shorter of the two neighbor lists.
// Complexity: O(log min(d(u), d(v))).
func (s *Sparse) Connected(u, v int) bool {
	if u == v || u < 0 || v < 0 || u >= s.n || v >= s.n {
		return false
	}
	if s.Degree(u) > s.Degree(v) {
		u, v = v, u
	}

	return ContainsSorted(s.Neighbors(u), v)
}

// Intersect returns set ∩ N(v) as a new ascending slice. set must be sorted.
// Complexity: O(|set| + d(v)).
func (s *Sparse) Intersect(set []int, v int) []int {
	return IntersectSorted(set, s.Neighbors(v))
}

// IntersectCount returns |set ∩ N(v)| without allocating. set must be sorted.
// Complexity: O(|set| + d(v)).
func (s *Sparse) IntersectCount(set []int, v int) int {
	return IntersectCount(set, s.Neighbors(v))
}

// Edges returns every undirected edge once as (u, v) with u < v, sorted by (u, v).
// Complexity: O(n + m).
func (s *Sparse) Edges() []Edge {
	out := make([]Edge, 0, s.edges)
	for u := 0; u < s.n; u++ {
		for _, v := range s.Neighbors(u) {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Vertices returns the ascending slice 0..n-1, the initial candidate set P.
func (s *Sparse) Vertices() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = i
	}

	return out
}
