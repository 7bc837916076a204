// Plain and balanced Bellman-Ford relaxation sweeps driving Lloyd
// clustering's propagation phases.
package cluster

import (
	"fmt"

	"github.com/sparsecoarsen/amgkernel/csr"
)

// BellmanFordStep performs one relaxation sweep over all vertices in
// ascending order: for each vertex i and each incident edge (i,j) with
// weight ax[off], if ax[off]+d[j] < d[i], it sets d[i] = ax[off]+d[j] and
// cm[i] = cm[j]. It does not iterate to convergence; the caller loops.
// Neighbors still at csr.Infinity are skipped, so no weight is ever added
// to Infinity.
//
// Complexity: O(V + E) per call.
func BellmanFordStep[Idx csr.Index, Val csr.Value](ap, aj []Idx, ax []Val, d []Val, cm []int) {
	n := len(ap) - 1
	inf := csr.Infinity[Val]()
	for i := 0; i < n; i++ {
		for off := int(ap[i]); off < int(ap[i+1]); off++ {
			j := aj[off]
			if d[j] == inf {
				continue
			}
			cand := ax[off] + d[j]
			if cand < d[i] {
				d[i] = cand
				cm[i] = cm[j]
			}
		}
	}
}

// BellmanFordBalanced relaxes d/cm to quiescence in one call, switching a
// vertex i to a neighbor j's cluster when either:
//
//   - ax[off]+d[j] < d[i] (strict improvement), or
//   - cm[i] >= 0, ax[off]+d[j] == d[i], i currently has no dependents
//     (predCount==0), and j's cluster is preferable by the balanced
//     tiebreak: strictly fewer members, or (on an exact member-count tie)
//     the smaller cluster id. This is an equal-distance rebalance that the
//     predecessor-safety check keeps from severing the shrinking
//     cluster's connectivity.
//
// predecessor/predecessor-count/cluster-size bookkeeping is scratch,
// scoped to this one call: cluster sizes are counted from the incoming cm,
// while every predecessor starts unset (-1) and every predecessor count
// at 0 on each invocation. k is the number of clusters (for sizing the
// cluster-size scratch).
//
// Known limitation, preserved rather than fixed: the pred_count safety
// check does not prevent i's own downstream dependents from being
// stranded when i switches away from them. The n^3 safety cap below
// exists because of that same uncertainty.
//
// Returns ErrIterationCap if more than n^3 sweeps run without quiescence.
func BellmanFordBalanced[Idx csr.Index, Val csr.Value](ap, aj []Idx, ax []Val, d []Val, cm []int, k int) error {
	n := len(ap) - 1

	clusterSize := make([]int, k)
	pred := make([]int, n)
	predCount := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}
	for i := 0; i < n; i++ {
		if cm[i] >= 0 {
			clusterSize[cm[i]]++
		}
	}

	cap := int64(n) * int64(n) * int64(n)
	var sweeps int64
	oldD := make([]Val, n)
	oldCM := make([]int, n)
	for {
		copy(oldD, d)
		copy(oldCM, cm)

		for i := 0; i < n; i++ {
			for off := int(ap[i]); off < int(ap[i+1]); off++ {
				j := aj[off]
				if cm[j] < 0 {
					continue
				}
				cand := ax[off] + d[j]

				switchToJ := false
				if cand < d[i] {
					switchToJ = true
				} else if cand == d[i] && cm[i] >= 0 && cm[j] != cm[i] && predCount[i] == 0 {
					sj, si := clusterSize[cm[j]], clusterSize[cm[i]]
					if sj < si || (sj == si && cm[j] < cm[i]) {
						switchToJ = true
					}
				}
				if !switchToJ {
					continue
				}

				if cm[i] >= 0 {
					clusterSize[cm[i]]--
				}
				clusterSize[cm[j]]++
				if pred[i] >= 0 {
					predCount[pred[i]]--
				}
				pred[i] = int(j)
				predCount[j]++
				d[i] = cand
				cm[i] = cm[j]
			}
		}

		// Convergence is judged on the state at sweep boundaries, not on
		// whether any individual relaxation fired during the sweep: a
		// vertex sitting exactly between two clusters of near-equal size
		// can flip its tentative cluster more than once within a single
		// sweep (processing one neighbor, then the other) and still land
		// back where it started, which must count as quiescent.
		same := true
		for i := 0; i < n; i++ {
			if d[i] != oldD[i] || cm[i] != oldCM[i] {
				same = false
				break
			}
		}
		if same {
			return nil
		}

		sweeps++
		if sweeps > cap {
			return fmt.Errorf("cluster.BellmanFordBalanced: %w", ErrIterationCap)
		}
	}
}
