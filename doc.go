// Package amgkernel is a library of sequential, allocation-scoped graph
// kernels over a read-only compressed-sparse-row view, built as the
// setup-phase primitives an algebraic multigrid coarsening pass needs:
// maximal independent sets, vertex coloring, breadth-first search,
// connected components, and cluster-center/Lloyd clustering support.
//
// Every kernel is a pure function over typed array views (csr.Index for
// indices, csr.Value for weights/distances) plus caller-allocated scratch;
// none retains state, spawns goroutines, or performs I/O. Callers own all
// partitioning, parallelism, and randomness.
//
// Subpackages:
//
//	csr/        — the read-only graph view (N, Ap, Aj, Ax) and its
//	              constraints, plus Validate and Infinity helpers.
//	mis/        — serial, Luby-parallel, and distance-k maximal
//	              independent set.
//	coloring/   — MIS-peel, Jones-Plassmann, and largest-degree-first
//	              vertex coloring, plus a first-fit recoloring pass.
//	bfs/        — level-set breadth-first search.
//	components/ — connected-component labeling via an explicit-stack
//	              (non-recursive) traversal.
//	cluster/    — cluster incidence indexing, exact graph-center via
//	              Floyd-Warshall, plain/balanced Bellman-Ford, and
//	              approximate/exact Lloyd clustering.
package amgkernel
