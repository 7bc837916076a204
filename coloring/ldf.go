package coloring

import (
	"github.com/sparsecoarsen/amgkernel/csr"
	"github.com/sparsecoarsen/amgkernel/mis"
)

// LDF colors the graph the same way JonesPlassmann does, except that the
// per-round priority of each uncolored vertex i is recomputed every round
// as y[i] + (number of i's neighbors still uncolored, excluding i itself),
// so the priority tracks the shrinking uncolored frontier instead of a
// fixed degree. y must have length n and holds the caller's random
// fractional component; it is read-only. x must have length n.
//
// Returns the number of colors used (one more than the highest color
// index, since colors are assigned from 0).
func LDF[Idx csr.Index, W csr.Value](n int, ap, aj []Idx, x []Idx, y []W) int {
	for i := range x {
		x[i] = -1
	}
	weights := make([]W, n)

	k := 0
	for {
		uncoloredLeft := false
		for i := 0; i < n; i++ {
			if x[i] == -1 {
				uncoloredLeft = true
				break
			}
		}
		if !uncoloredLeft {
			break
		}

		for i := 0; i < n; i++ {
			if x[i] != -1 {
				continue
			}
			uncoloredNeighbors := W(0)
			for _, j := range aj[ap[i]:ap[i+1]] {
				if j != Idx(i) && x[j] == -1 {
					uncoloredNeighbors++
				}
			}
			weights[i] = y[i] + uncoloredNeighbors
		}

		cVal := Idx(k)
		mis.Parallel(n, ap, aj, Idx(-1), cVal, Idx(-2), x, weights, 1)

		for i := 0; i < n; i++ {
			if x[i] == -2 {
				x[i] = -1
			}
		}

		FirstFit(n, ap, aj, x, k)

		k++
	}

	maxColor := 0
	for _, c := range x {
		if int(c) > maxColor {
			maxColor = int(c)
		}
	}

	return maxColor + 1
}
