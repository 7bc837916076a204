// Luby-style randomized parallel maximal independent set. The caller
// supplies the random priority vector y; ties break deterministically by
// vertex index (larger index wins), so repeated calls with the same y
// reproduce the same result.
package mis

import "github.com/sparsecoarsen/amgkernel/csr"

// outranks reports whether vertex i strictly outranks vertex j under the
// Luby priority order: the larger y wins, tie broken by the larger index
// winning. i outranks j means j must yield to i.
func outranks[Idx csr.Index, W csr.Value](yi W, i Idx, yj W, j Idx) bool {
	if yi != yj {
		return yi > yj
	}

	return i > j
}

// Parallel runs Luby rounds over vertices with x[i]==active until a full
// sweep promotes/demotes no more active vertices, or maxIters rounds have
// run (maxIters == -1 means unbounded). It returns the total number of
// vertices promoted into the independent set (x[i]=cVal).
//
// A promoted vertex takes cVal; its excluded neighbors take fVal.
//
// Within a round, every active vertex i:
//   - is excluded (x[i]=fVal) if any neighbor already holds cVal;
//   - otherwise stays active if some active neighbor outranks it;
//   - otherwise is promoted: x[i]=cVal, every active neighbor excluded to
//     fVal, count incremented.
//
// The comparisons are evaluated in CSR edge order and never reordered, so
// outcomes are reproducible across runs given identical y.
func Parallel[Idx csr.Index, W csr.Value](n int, ap, aj []Idx, active, cVal, fVal Idx, x []Idx, y []W, maxIters int) int {
	count := 0
	round := 0
	for {
		if maxIters >= 0 && round >= maxIters {
			return count
		}
		round++

		changed := false
		anyActive := false
		for i := 0; i < n; i++ {
			idx := Idx(i)
			if x[idx] != active {
				continue
			}
			anyActive = true

			neighbors := aj[ap[idx]:ap[idx+1]]

			excluded := false
			for _, j := range neighbors {
				if x[j] == cVal {
					x[idx] = fVal
					excluded = true
					changed = true
					break
				}
			}
			if excluded {
				continue
			}

			wins := true
			for _, j := range neighbors {
				if x[j] != active {
					continue
				}
				if outranks(y[j], j, y[idx], idx) {
					wins = false
					break
				}
			}
			if !wins {
				continue
			}

			x[idx] = cVal
			count++
			changed = true
			for _, j := range neighbors {
				if x[j] == active {
					x[j] = fVal
				}
			}
		}

		if !anyActive || !changed {
			return count
		}
	}
}
