package coloring

import (
	"github.com/sparsecoarsen/amgkernel/csr"
	"github.com/sparsecoarsen/amgkernel/mis"
)

// JonesPlassmann colors the graph using one synchronous Luby round per
// color. z must have length n and arrive pre-filled with a random
// fractional component; JonesPlassmann adds each vertex's degree to z[i]
// in place so that degree breaks ties among equal random draws. x must
// have length n; it is initialized to -1 (uncolored) internally.
//
// Each round K: a single round of mis.Parallel (maxIters=1) is run over
// uncolored vertices (active=-1, cVal=K, fVal=-2) using z as priorities;
// the transient fVal marker is reverted to -1 (still uncolored); then
// FirstFit compacts the round's winners (x[i]==K) down to the lowest free
// color. Rounds continue until every vertex is colored.
//
// Returns the number of colors used (one more than the highest color
// index, since colors are assigned from 0).
func JonesPlassmann[Idx csr.Index, W csr.Value](n int, ap, aj []Idx, x []Idx, z []W) int {
	for i := range x {
		x[i] = -1
	}
	for i := 0; i < n; i++ {
		deg := W(int(ap[i+1]) - int(ap[i]))
		z[i] += deg
	}

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

		cVal := Idx(k)
		mis.Parallel(n, ap, aj, Idx(-1), cVal, Idx(-2), x, z, 1)

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
