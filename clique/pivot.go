package clique

import "github.com/katalvlaran/lvclique/adjacency"

// ChoosePivot returns the vertex u ∈ P ∪ X maximizing |P ∩ N(u)|.
// P is scanned before X and a later vertex must strictly beat the current best,
// so ties resolve to the first vertex encountered.
// Returns ErrEmptyCandidates when P and X are both empty.
// Complexity: O((|P| + |X|) · (|P| + d)).
func ChoosePivot(s *adjacency.Sparse, p, x []int) (int, error) {
	if len(p) == 0 && len(x) == 0 {
		return -1, ErrEmptyCandidates
	}

	pivot, best := -1, -1
	var u, c int
	for _, u = range p {
		if c = s.IntersectCount(p, u); c > best {
			pivot, best = u, c
		}
	}
	for _, u = range x {
		if c = s.IntersectCount(p, u); c > best {
			pivot, best = u, c
		}
	}

	return pivot, nil
}

// ChoosePivotDense is ChoosePivot over bitmask candidate sets; members are scanned
// in ascending id order, P before X.
// Complexity: O(|P| + |X|) word operations.
func ChoosePivotDense(d *adjacency.Dense, p, x adjacency.Mask) (int, error) {
	if p.Empty() && x.Empty() {
		return -1, ErrEmptyCandidates
	}

	pivot, best := -1, -1
	scan := func(set adjacency.Mask) {
		for rest := set; !rest.Empty(); {
			u := rest.Lowest()
			rest = rest.Without(u)
			if c := d.Intersect(p, u).Count(); c > best {
				pivot, best = u, c
			}
		}
	}
	scan(p)
	scan(x)

	return pivot, nil
}
