// Package adjacency stores an immutable undirected graph over integer vertex ids
// [0, n) and provides the set algebra the clique search is built on.
//
// What:
//
//   - Sparse: compressed sparse rows (offsets + neighbors). Every neighbor list is
//     sorted ascending, free of self-loops and duplicates, and the relation is
//     symmetric. Adjacency tests are binary searches, O(log d).
//   - Dense: one 64-bit Mask per vertex, valid only while n ≤ MaxDenseOrder.
//     Adjacency tests and candidate intersections are single AND operations.
//   - Sorted-slice helpers (IntersectSorted, IntersectCount, UnionSorted,
//     DifferenceSorted, ...) implementing two-pointer merges over ascending ids.
//   - Mask helpers (And, Or, AndNot, Count, Slice, ...) over uint64 bit vectors.
//
// Why:
//
//   - Merge intersection of sorted neighbor lists is the decisive primitive of
//     Bron–Kerbosch on sparse inputs; keeping lists sorted at construction makes
//     every later intersection linear.
//   - Small graphs fit in a machine word per row, which turns P ∩ N(v) into one
//     instruction.
//
// Complexity:
//
//   - NewSparse:       O(n + m log m) time, O(n + m) memory.
//   - NewDense:        O(n + m) time, O(n) words of memory.
//   - Connected:       Sparse O(log d), Dense O(1).
//   - IntersectSorted: O(|a| + |b|).
//
// Errors:
//
//   - ErrNegativeOrder                 vertex count below zero.
//   - ErrVertexOutOfRange              edge endpoint outside [0, n).
//   - ErrOversizedGraphForDenseModel   dense model requested for n > MaxDenseOrder;
//     callers fall back to Sparse, the model never truncates.
package adjacency
