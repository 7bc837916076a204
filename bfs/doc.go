// Package bfs computes a level-set breadth-first traversal of a csr.Graph
// from a single seed vertex.
//
// level must be pre-filled by the caller with -1 (unreached). BFS fills
// order with a permutation of reached vertices in visitation order and
// level with each reached vertex's unweighted distance from seed.
//
// Complexity: O(V + E). Memory: the caller-owned order/level buffers plus
// one internal window cursor; no extra allocation.
package bfs
