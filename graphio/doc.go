// Package graphio reads and writes graphs and clique lists for lvclique.
//
// What:
//
//	Text format: the first non-comment line is "n m" (vertex and undirected
//	edge counts); every following line is "v nbr nbr ...". Self-loops are
//	ignored, one-sided lists are symmetrized, blank lines and lines starting
//	with '#' or '%' are skipped.
//
//	graph6: a single-line encoding decoded with gonum's graph6 package.
//
// Errors:
//
//	Every malformed-input failure matches errors.Is(err, ErrInput) and one of
//	the specific sentinels (ErrMissingHeader, ErrMalformedHeader,
//	ErrMalformedLine, ErrVertexOutOfRange, ErrEdgeCountMismatch,
//	ErrMalformedGraph6). Operating-system failures are returned wrapped with
//	the file name.
//
// Complexity:
//
//	ReadText is O(n + m log m) (dominated by adjacency normalization).
package graphio
