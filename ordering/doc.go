// Package ordering computes vertex orders that seed the clique search:
// the degeneracy (core) order, a degree order and the natural order.
//
// What:
//
//   - Degeneracy(g): bin-sort peeling (Batagelj–Zaversnik). Returns the peel
//     sequence, the core number of every vertex and the graph degeneracy.
//   - ByDegree(g): vertices by descending degree, ties by ascending id.
//   - Natural(n): 0..n-1.
//   - ListingOrder(g): rank of every vertex in the degeneracy order.
//   - For(kind, g): dispatcher used by the CLI (--order natural|degree|degeneracy).
//
// Why:
//
//   - Seeding the top-level branches or the adaptive global order with a
//     degeneracy order bounds the candidate set of every top-level branch by the
//     degeneracy, which is small for real-world sparse graphs.
//
// Complexity:
//
//   - Degeneracy: O(n + m) time, O(n + Δ) memory.
//   - ByDegree: O(n log n).
//
// Errors:
//
//   - ErrUnknownKind from ParseKind / For.
package ordering
