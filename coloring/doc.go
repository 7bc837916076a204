// Package coloring computes vertex colorings of a csr.Graph by layering
// the mis package's serial and parallel maximal-independent-set kernels
// with a first-fit recolor pass.
//
// Three variants are provided:
//
//   - MIS:            repeated mis.Serial rounds, one color per round.
//   - JonesPlassmann:  one mis.Parallel round per color, weights =
//     random fractional + degree.
//   - LDF:            one mis.Parallel round per color, weights =
//     random fractional + live uncolored-neighbor count, recomputed
//     every round (Largest-Degree-First).
//
// All three initialize x to -1 (uncolored) and return once every vertex
// holds a color in [0, K).
package coloring
