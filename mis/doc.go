// Package mis computes maximal independent sets over a csr.Graph: a
// greedy serial variant (Serial), a Luby-style randomized parallel variant
// (Parallel), and a distance-k generalization (DistanceK) that enforces
// separation strictly greater than k between chosen vertices.
//
// All three kernels operate on a caller-owned vertex-state array using
// sentinel values supplied by the caller rather than a fixed enum, so that
// coloring (package coloring) can layer its own per-color sentinel scheme
// on top without the two packages sharing private state.
//
// Complexity:
//
//   - Serial:    O(V + E) single pass.
//   - Parallel:  O((V + E) * rounds), rounds bounded by maxIters if >= 0.
//   - DistanceK: O((V + E) * k * rounds).
package mis
