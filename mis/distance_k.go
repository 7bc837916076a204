// Distance-k maximal independent set via repeated max-propagation
// enforcing pairwise separation strictly greater than k among promoted
// vertices.
package mis

import "github.com/sparsecoarsen/amgkernel/csr"

// csrPropagateMax runs one step of neighborhood-argmax propagation: each
// vertex's own (key,val) competes against every neighbor's (key,val), the
// winner ranked by larger val primarily and larger key as tiebreak. Reads
// from (keysIn,valsIn), writes to (keysOut,valsOut); the two buffer pairs
// must not alias.
func csrPropagateMax[Idx csr.Index, W csr.Value](n int, ap, aj []Idx, keysIn []Idx, valsIn []W, keysOut []Idx, valsOut []W) {
	for i := 0; i < n; i++ {
		idx := Idx(i)
		bestKey := keysIn[idx]
		bestVal := valsIn[idx]
		for _, j := range aj[ap[idx]:ap[idx+1]] {
			if valsIn[j] > bestVal || (valsIn[j] == bestVal && keysIn[j] > bestKey) {
				bestVal = valsIn[j]
				bestKey = keysIn[j]
			}
		}
		keysOut[idx] = bestKey
		valsOut[idx] = bestVal
	}
}

// DistanceK maintains separation > k between promoted vertices (x[i]=1
// for promoted, x[i]=0 otherwise; x must be caller-zeroed). y supplies the
// initial tie-break priorities for un-promoted vertices; maxIters bounds
// the number of outer iterations (-1 means unbounded).
//
// Each outer iteration:
//  1. Propagate (index,y) max outward k times: every vertex learns the
//     argmax of its k-ball, ties broken by larger index.
//  2. Any active vertex that is the max of its own k-ball is promoted.
//  3. Propagate the promoted marker outward k more times so every vertex
//     within distance k of a promotion sees it.
//  4. Deactivate vertices that saw a promotion (and pin their priority so
//     they never win again); vertices untouched this round keep working
//     with their original y.
//
// Complexity: O((V+E) * k * rounds).
func DistanceK[Idx csr.Index, W csr.Value](n int, ap, aj []Idx, k int, x []Idx, y []W, maxIters int) {
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	keysA := make([]Idx, n)
	valsA := make([]W, n)
	keysB := make([]Idx, n)
	valsB := make([]W, n)

	for iter := 0; maxIters < 0 || iter < maxIters; iter++ {
		anyActive := false
		for i := 0; i < n; i++ {
			if active[i] {
				anyActive = true
				break
			}
		}
		if !anyActive {
			return
		}

		// Step 1: propagate (key=index, val=y) max outward k times.
		for i := 0; i < n; i++ {
			keysA[i] = Idx(i)
			valsA[i] = y[i]
		}
		inKeys, inVals, outKeys, outVals := keysA, valsA, keysB, valsB
		for step := 0; step < k; step++ {
			csrPropagateMax(n, ap, aj, inKeys, inVals, outKeys, outVals)
			inKeys, outKeys = outKeys, inKeys
			inVals, outVals = outVals, inVals
		}
		winnerKeys := inKeys

		// Step 2: promote self-maxima among still-active vertices.
		for i := 0; i < n; i++ {
			if active[i] && int(winnerKeys[i]) == i {
				x[i] = 1
			}
		}

		// Step 3: propagate the promoted marker outward k more times.
		for i := 0; i < n; i++ {
			keysA[i] = Idx(i)
			valsA[i] = W(x[i])
		}
		inKeys, inVals, outKeys, outVals = keysA, valsA, keysB, valsB
		for step := 0; step < k; step++ {
			csrPropagateMax(n, ap, aj, inKeys, inVals, outKeys, outVals)
			inKeys, outKeys = outKeys, inKeys
			inVals, outVals = outVals, inVals
		}
		sawPromotion := inVals

		// Step 4: deactivate vertices that saw a promotion within k;
		// pin their priority to -1 so they never win a future round.
		stillWorking := false
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			if sawPromotion[i] == 1 {
				active[i] = false
				y[i] = W(-1)
			} else {
				stillWorking = true
			}
		}

		if !stillWorking {
			return
		}
	}
}
