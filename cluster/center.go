// Exact graph-center of a cluster via Floyd-Warshall, using a flat
// row-major distance buffer generalized to a generic Val so the same
// kernel serves integer and floating-point edge weights.
package cluster

import (
	"fmt"

	"github.com/sparsecoarsen/amgkernel/csr"
)

// Center returns the global index of the graph-center of cluster a: the
// member minimizing eccentricity (max distance to any other member),
// ties broken by smallest local index. icp, ici, l, count are the
// outputs of Incidence; ax parallels aj with non-negative edge weights.
//
// count[a] is cluster a's member count. The end of cluster a's block is
// icp[a]+count[a], not icp[a+1]: ICi is stored in descending-label order,
// so the slot after a cluster's block belongs to the next-lower label,
// not a+1 (see Incidence's doc comment).
//
// Only intra-cluster edges (cm[j]==a) are used to seed the distance
// matrix. The cluster must be internally connected; Center returns
// ErrDisconnected otherwise.
//
// Complexity: Time O(N^3), space O(N^2), where N is the cluster's size.
// This dominates the cost of exact Lloyd clustering and should not be
// invoked on very large clusters.
func Center[Idx csr.Index, Val csr.Value](ap, aj []Idx, ax []Val, cm []int, a int, icp, ici, l, count []int) (int, error) {
	lo, size := icp[a], count[a]
	members := ici[lo : lo+size]

	inf := csr.Infinity[Val]()
	dist := make([]Val, size*size)
	for i := range dist {
		dist[i] = inf
	}
	for m := 0; m < size; m++ {
		dist[m*size+m] = 0
	}

	for m := 0; m < size; m++ {
		i := members[m]
		for off := int(ap[i]); off < int(ap[i+1]); off++ {
			j := aj[off]
			if cm[j] != a {
				continue
			}
			w := ax[off]
			lm := l[j]
			if w < dist[m*size+lm] {
				dist[m*size+lm] = w
			}
		}
	}

	// Floyd-Warshall, fixed via->row->col order for deterministic
	// accumulation.
	for via := 0; via < size; via++ {
		baseVia := via * size
		for row := 0; row < size; row++ {
			rowVia := dist[row*size+via]
			if rowVia == inf {
				continue
			}
			baseRow := row * size
			for col := 0; col < size; col++ {
				viaCol := dist[baseVia+col]
				if viaCol == inf {
					continue
				}
				cand := rowVia + viaCol
				if cand < dist[baseRow+col] {
					dist[baseRow+col] = cand
				}
			}
		}
	}

	bestLocal := -1
	var bestEcc Val
	for m := 0; m < size; m++ {
		var ecc Val
		for n := 0; n < size; n++ {
			d := dist[m*size+n]
			if d == inf {
				return 0, fmt.Errorf("cluster.Center: cluster %d, node %d: %w", a, members[m], ErrDisconnected)
			}
			if d > ecc {
				ecc = d
			}
		}
		if bestLocal == -1 || ecc < bestEcc {
			bestLocal = m
			bestEcc = ecc
		}
	}

	return members[bestLocal], nil
}
