package coloring

import (
	"github.com/sparsecoarsen/amgkernel/csr"
	"github.com/sparsecoarsen/amgkernel/mis"
)

// MIS colors the graph described by (n, ap, aj) by repeated calls to
// mis.Serial. x must have length n; it is initialized to -1 (uncolored)
// internally. Each round K uses sentinels active=-1-K, cVal=K,
// fVal=-2-K so that neither sentinel collides with a real color. The
// round's fVal markers are reset to -1 before the next round starts.
// MIS returns the number of colors used, K.
//
// Complexity: O(K * (V+E)) where K is the chromatic-like number of rounds
// this greedy peel takes.
func MIS[Idx csr.Index](n int, ap, aj []Idx, x []Idx) int {
	for i := range x {
		x[i] = -1
	}

	k := 0
	for {
		remaining := false
		for i := 0; i < n; i++ {
			if x[i] == -1 {
				remaining = true
				break
			}
		}
		if !remaining {
			return k
		}

		active := Idx(-1 - k)
		cVal := Idx(k)
		fVal := Idx(-2 - k)

		for i := 0; i < n; i++ {
			if x[i] == -1 {
				x[i] = active
			}
		}

		mis.Serial(n, ap, aj, active, cVal, fVal, x)

		for i := 0; i < n; i++ {
			if x[i] == fVal {
				x[i] = -1
			}
		}

		k++
	}
}
