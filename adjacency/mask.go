package adjacency

import "math/bits"

// Mask is a set of vertex ids in [0, 64) packed into one machine word:
// bit i is set ⇔ vertex i is a member.
type Mask uint64

// MaskOf returns the mask holding exactly the given ids. Ids outside [0, 64)
// are ignored.
func MaskOf(vs ...int) Mask {
	var m Mask
	for _, v := range vs {
		m = m.With(v)
	}

	return m
}

// FullMask returns the mask of vertices 0..n-1. n is clamped to [0, 64].
func FullMask(n int) Mask {
	switch {
	case n <= 0:
		return 0
	case n >= MaxDenseOrder:
		return ^Mask(0)
	default:
		return Mask(1)<<uint(n) - 1
	}
}

// Has reports whether v is in m.
func (m Mask) Has(v int) bool {
	if v < 0 || v >= MaxDenseOrder {
		return false
	}

	return m&(Mask(1)<<uint(v)) != 0
}

// With returns m ∪ {v}.
func (m Mask) With(v int) Mask {
	if v < 0 || v >= MaxDenseOrder {
		return m
	}

	return m | Mask(1)<<uint(v)
}

// Without returns m \ {v}.
func (m Mask) Without(v int) Mask {
	if v < 0 || v >= MaxDenseOrder {
		return m
	}

	return m &^ (Mask(1) << uint(v))
}

// And returns m ∩ o.
func (m Mask) And(o Mask) Mask { return m & o }

// Or returns m ∪ o.
func (m Mask) Or(o Mask) Mask { return m | o }

// AndNot returns m \ o.
func (m Mask) AndNot(o Mask) Mask { return m &^ o }

// Empty reports whether m has no members.
func (m Mask) Empty() bool { return m == 0 }

// Count returns |m| (population count).
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Lowest returns the smallest member of m, or -1 if m is empty.
func (m Mask) Lowest() int {
	if m == 0 {
		return -1
	}

	return bits.TrailingZeros64(uint64(m))
}

// Slice returns the members of m in ascending order.
// Complexity: O(|m|).
func (m Mask) Slice() []int {
	out := make([]int, 0, m.Count())
	for rest := m; rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(uint64(rest)))
	}

	return out
}
