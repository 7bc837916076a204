// Greedy maximal independent set over a filtered active subset, in
// ascending vertex order with caller-supplied sentinels.
package mis

import "github.com/sparsecoarsen/amgkernel/csr"

// Serial walks vertices 0..n-1 in order. For each vertex i with
// x[i]==active, it promotes i into the independent set (x[i]=cVal),
// counts it, and excludes every still-active neighbor (x[j]=fVal).
// Vertices that are already cVal or fVal are left untouched.
//
// The vertex being examined takes cVal when promoted; its demoted
// neighbors take fVal.
//
// Guarantee: the promoted set is independent (no two promoted vertices are
// adjacent among originally-active vertices) and maximal with respect to
// this greedy ascending order: every non-promoted originally-active
// vertex ends up with at least one promoted neighbor.
//
// Complexity: O(V + E). No allocation.
func Serial[Idx csr.Index](n int, ap, aj []Idx, active, cVal, fVal Idx, x []Idx) int {
	count := 0
	for i := 0; i < n; i++ {
		if x[i] != active {
			continue
		}
		x[i] = cVal
		count++
		for _, j := range aj[ap[i]:ap[i+1]] {
			if x[j] == active {
				x[j] = fVal
			}
		}
	}

	return count
}
