// Package builder assembles deterministic adjacency.Sparse fixtures for tests,
// examples and benchmarks.
//
// A build is a list of Constructor closures run by BuildGraph against a fresh
// Draft. Each constructor appends its own block of vertices, so
//
//	builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
//
// yields two disjoint triangles on ids 0..5.
//
// Constructors:
//
//   - Empty(n), Complete(n), Path(n), Cycle(n), Star(n), Wheel(n), Grid(r, c)
//   - CompleteMultipartite(sizes...), CompleteBipartite(n1, n2), MoonMoser(k)
//   - RandomSparse(n, p), RandomRegular(n, d)   (need WithSeed / WithRand)
//   - Edges(n, pairs...)                         hand-written fixtures
//
// Options:
//
//   - WithSeed(seed), WithRand(r)   RNG for stochastic constructors.
//   - WithRelabel()                 random permutation of the final ids.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed,
//     always wrapped with the constructor name; branch with errors.Is.
//
// Option constructors panic on meaningless values (WithRand(nil)); constructors
// never panic.
package builder
