package clique

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvclique/adjacency"
)

// IsClique reports whether the vertices of c are pairwise adjacent in m.
// Repeated or out-of-range ids make c invalid. The empty set is not a clique.
// Complexity: O(|c|² · log d) on Sparse, O(|c|²) on Dense.
func IsClique(m adjacency.Model, c []int) bool {
	if m == nil || len(c) == 0 {
		return false
	}
	n := m.Order()
	for i, u := range c {
		if u < 0 || u >= n {
			return false
		}
		for _, v := range c[i+1:] {
			if !m.Connected(u, v) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether c is a clique of m that no vertex outside c extends.
// Complexity: O(n · |c| · log d).
func IsMaximal(m adjacency.Model, c []int) bool {
	if !IsClique(m, c) {
		return false
	}

	in := make(map[int]struct{}, len(c))
	for _, v := range c {
		in[v] = struct{}{}
	}

	// a candidate must have degree >= |c| to be adjacent to all of c
	for w := 0; w < m.Order(); w++ {
		if _, ok := in[w]; ok || m.Degree(w) < len(c) {
			continue
		}
		if extends(m, c, w) {
			return false
		}
	}

	return true
}

func extends(m adjacency.Model, c []int, w int) bool {
	for _, v := range c {
		if !m.Connected(v, w) {
			return false
		}
	}

	return true
}

// Missing returns the cliques of ref that do not occur in got, compared as
// vertex sets (order inside a clique is irrelevant). The result is sorted
// lexicographically.
func Missing(ref, got [][]int) [][]int {
	seen := make(map[string]struct{}, len(got))
	for _, c := range got {
		seen[cliqueKey(sortedCopy(c))] = struct{}{}
	}

	var out [][]int
	for _, c := range ref {
		sc := sortedCopy(c)
		if _, ok := seen[cliqueKey(sc)]; !ok {
			out = append(out, sc)
		}
	}
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}

func sortedCopy(c []int) []int {
	out := slices.Clone(c)
	slices.Sort(out)

	return out
}

// cliqueKey renders a sorted clique as its canonical map key.
func cliqueKey(sorted []int) string {
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
