package adjacency

import "sort"

// Candidate-set algebra over ascending, duplicate-free []int slices.
// The merge helpers (IntersectSorted, UnionSorted, DifferenceSorted) leave their
// inputs untouched and return freshly allocated slices, so a caller can hand the
// result to a child recursion frame without aliasing. InsertSorted and
// RemoveSorted work in place and are meant for a frame's own P and X.

// IntersectSorted returns a ∩ b using a two-pointer merge walk.
// Complexity: O(|a| + |b|) time, O(min(|a|,|b|)) memory.
func IntersectSorted(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]int, 0, min(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// IntersectCount returns |a ∩ b| without allocating.
// Complexity: O(|a| + |b|).
func IntersectCount(a, b []int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return count
}

// UnionSorted returns a ∪ b.
// Complexity: O(|a| + |b|).
func UnionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// DifferenceSorted returns a \ b.
// Complexity: O(|a| + |b|).
func DifferenceSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			out = append(out, a[i])
			i++
			continue
		}
		if a[i] == b[j] {
			i++
		}
		j++
	}

	return out
}

// ContainsSorted reports whether x is present in a, by binary search.
// Complexity: O(log |a|).
func ContainsSorted(a []int, x int) bool {
	i := sort.SearchInts(a, x)

	return i < len(a) && a[i] == x
}

// InsertSorted returns a with x inserted at its ordered position. If x is already
// present, a is returned unchanged. The input slice may be reused.
// Complexity: O(|a|).
func InsertSorted(a []int, x int) []int {
	i := sort.SearchInts(a, x)
	if i < len(a) && a[i] == x {
		return a
	}
	a = append(a, 0)
	copy(a[i+1:], a[i:])
	a[i] = x

	return a
}

// RemoveSorted returns a without x, shifting in place. If x is absent, a is
// returned unchanged.
// Complexity: O(|a|).
func RemoveSorted(a []int, x int) []int {
	i := sort.SearchInts(a, x)
	if i == len(a) || a[i] != x {
		return a
	}

	return append(a[:i], a[i+1:]...)
}

// IsSortedSet reports whether a is strictly ascending (sorted, no duplicates).
func IsSortedSet(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] >= a[i] {
			return false
		}
	}

	return true
}
