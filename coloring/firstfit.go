// First-fit recolor lowers a K-colored vertex to the smallest color not
// used by any neighbor.
package coloring

import "github.com/sparsecoarsen/amgkernel/csr"

// FirstFit scans vertices with x[i]==k and reassigns each to the smallest
// color index in [0, k) not already used by a neighbor (x[j]>=0, j!=i).
// If the full neighborhood uses every color below k, x[i] keeps the value
// k. Calling FirstFit never increases max(x): each rewritten vertex's
// color is <= k.
//
// Complexity: O(deg(i)) time and O(k) scratch space per recolored vertex.
func FirstFit[Idx csr.Index](n int, ap, aj []Idx, x []Idx, k int) {
	mask := make([]bool, k)
	for i := 0; i < n; i++ {
		if int(x[i]) != k {
			continue
		}

		for j := range mask {
			mask[j] = false
		}
		for _, j := range aj[ap[i]:ap[i+1]] {
			if j == Idx(i) {
				continue
			}
			if c := int(x[j]); c >= 0 && c < k {
				mask[c] = true
			}
		}

		chosen := k
		for c := 0; c < k; c++ {
			if !mask[c] {
				chosen = c
				break
			}
		}
		x[i] = Idx(chosen)
	}
}
