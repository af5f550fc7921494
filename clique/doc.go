// Package clique enumerates the maximal cliques of an undirected graph held in an
// adjacency.Sparse or adjacency.Dense model.
//
// What:
//
//   - EnumerateSparse / EnumerateDense: the reference Bron–Kerbosch search with
//     Tomita pivoting and degree pruning. Complete: every maximal clique is
//     reported exactly once.
//   - EnumerateSparsePlain / EnumerateDensePlain: the same search without the
//     pivot, branching on every candidate. Complete, and a cross-check for the
//     pivot rule.
//   - EnumerateAdaptive: pivoting search that consults an OrderState (global visit
//     order + covered mask) after every reported clique and skips covered
//     candidates. Best-effort: it can miss cliques (Result.Complete == false).
//   - EnumerateSimpleAdaptive: order-driven extension without P/X or pivot. Also
//     best-effort; its leaves are not guaranteed maximal unless WithVerifyMaximal
//     is set.
//   - Sink: counts, deduplicates (equal-or-subset against recorded cliques), tracks
//     the maximum size and forwards accepted cliques to an OnClique hook.
//   - IsClique, IsMaximal, Missing: verification helpers.
//
// Why:
//
//   - Maximal cliques underpin community detection, motif mining, and
//     compatibility/conflict analysis; pivoting keeps the search within the
//     Moon–Moser bound of 3^(n/3) leaves.
//
// Search state:
//
//	R  ordered partial clique, pairwise adjacent at all times
//	P  candidates adjacent to every vertex of R
//	X  vertices already explored as extensions of the current R
//
// P and X are disjoint subsets of the common neighborhood of R. Every child frame
// receives freshly intersected P' and X'; the parent only moves v from P to X
// between siblings.
//
// Complexity:
//
//   - Reference search: O(3^(n/3)) frames worst case; per frame O(|P|·d) for the
//     pivot (Sparse) or O(|P ∪ X|) word operations (Dense).
//   - Sink dedup: O(|c| + Σ posting candidates · |c|) per report.
//
// Options:
//
//   - WithContext, WithTimeout        cancellation checked at the top of every frame.
//   - WithNodeBudget                  caps the number of frames (ErrNodeBudgetExceeded).
//   - WithDegreePruning(bool)         toggles the deg(v) < |R| filter (default on).
//   - WithInitialOrder(order)         top-level branch order / adaptive seed.
//   - WithWorkers(k)                  parallel top-level branches (complete variants only).
//   - WithOnClique(fn)                hook for every accepted clique.
//   - WithCollect(bool)               keep cliques in Result (default true).
//   - WithVerifyMaximal()             reject non-maximal reports in the sink.
//   - WithDedup()                     force subset dedup for the complete variants.
//
// Errors:
//
//   - ErrNilGraph               graph pointer is nil.
//   - ErrNodeBudgetExceeded     frame budget exhausted; partial result returned.
//   - ErrParallelUnsupported    WithWorkers > 1 on an adaptive variant.
//   - ErrInvalidOrder           initial order is not a permutation of 0..n-1.
//   - ErrUnknownVariant         ParseVariant / Enumerate with an unknown mode.
//   - ErrEmptyCandidates        ChoosePivot with P and X both empty.
//   - ErrIncompleteSearch       returned by Result.CheckComplete for best-effort runs.
//   - context.Canceled / context.DeadlineExceeded from the supplied context.
//   - adjacency.ErrOversizedGraphForDenseModel from Enumerate(VariantDensePivot).
//   - hook errors               wrapped from OnClique.
package clique
