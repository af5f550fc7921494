// Package lvclique enumerates the maximal cliques of undirected graphs.
//
// What is lvclique?
//
//	A Bron–Kerbosch engine with Tomita pivoting, two adjacency models and two
//	best-effort adaptive variants:
//		• adjacency/: immutable CSR lists and 64-bit masks + sorted-set algebra
//		• clique/   : pivoting search (sparse, dense), adaptive reordering,
//		               deduplicating sink, verification helpers
//		• ordering/ : degeneracy (core) peeling, degree and natural orders
//		• graphio/  : "n m" text format, graph6, clique lists
//		• builder/  : deterministic fixture graphs (Moon–Moser, wheels, G(n,p)…)
//		• metrics/, logging/, config/, resultstore/: the cliquer command's plumbing
//		• cmd/cliquer: the command line front end
//
// Guarantees:
//
//   - The sparse and dense pivoting variants report every maximal clique
//     exactly once (Result.Complete).
//   - The adaptive variants never report a non-clique but may miss maximal
//     cliques; they exist for experiments and are labeled best-effort.
//   - Graphs are immutable during a run; safe for concurrent readers.
//
// Quick example:
//
//	    0───1
//	     \ /
//	      2───3
//
//	has two maximal cliques: {0,1,2} and {2,3}.
//
//	go install github.com/katalvlaran/lvclique/cmd/cliquer@latest
package lvclique
