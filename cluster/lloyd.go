// Lloyd clustering, approximate and exact variants. Each call performs
// exactly one Lloyd iteration; the caller loops for multiple iterations.
package cluster

import (
	"fmt"

	"github.com/sparsecoarsen/amgkernel/csr"
)

// validateSeeds checks every seed lies in [0, n).
func validateSeeds(n int, seeds []int) error {
	for a, s := range seeds {
		if s < 0 || s >= n {
			return fmt.Errorf("cluster: seed %d for cluster %d out of [0,%d): %w", s, a, n, ErrSeedOutOfRange)
		}
	}

	return nil
}

// converge repeatedly calls BellmanFordStep until d stops changing
// between passes, using old as scratch (must have length n).
func converge[Idx csr.Index, Val csr.Value](ap, aj []Idx, ax []Val, d []Val, cm []int, old []Val) {
	n := len(d)
	for {
		copy(old, d)
		BellmanFordStep(ap, aj, ax, d, cm)

		changed := false
		for i := 0; i < n; i++ {
			if d[i] != old[i] {
				changed = true
				break
			}
		}
		if !changed {
			return
		}
	}
}

// Lloyd performs one approximate Lloyd clustering iteration: outward
// propagation from seeds, a boundary reset, inward propagation from the
// boundary, and a seed update that moves each seed to the cluster-interior
// point farthest from the boundary. d and cm must have length n;
// d/cm are reinitialized internally from seeds. seeds has length k (the
// cluster count) and is updated in place.
//
// Complexity: O((V+E) * rounds) for each propagation phase.
func Lloyd[Idx csr.Index, Val csr.Value](ap, aj []Idx, ax []Val, d []Val, cm []int, seeds []int) error {
	n := len(ap) - 1
	if err := validateSeeds(n, seeds); err != nil {
		return err
	}

	inf := csr.Infinity[Val]()
	for i := 0; i < n; i++ {
		d[i] = inf
		cm[i] = -1
	}
	for a, s := range seeds {
		d[s] = 0
		cm[s] = a
	}

	old := make([]Val, n)
	converge(ap, aj, ax, d, cm, old)

	for i := 0; i < n; i++ {
		d[i] = inf
	}
	for i := 0; i < n; i++ {
		for off := int(ap[i]); off < int(ap[i+1]); off++ {
			j := aj[off]
			if cm[j] != cm[i] {
				d[i] = 0
				break
			}
		}
	}

	converge(ap, aj, ax, d, cm, old)

	for i := 0; i < n; i++ {
		a := cm[i]
		if a < 0 {
			continue
		}
		if d[seeds[a]] < d[i] {
			seeds[a] = i
		}
	}

	return nil
}

// LloydExact performs one exact Lloyd clustering iteration: a single
// self-converging balanced Bellman-Ford pass (BellmanFordBalanced), then
// Incidence followed by Center per cluster to relocate each seed to its
// cluster's exact graph-center. d and cm are reinitialized internally
// from seeds, exactly as in Lloyd. seeds is updated in place.
//
// Complexity: dominated by Center's O(N^3) per cluster of size N.
func LloydExact[Idx csr.Index, Val csr.Value](ap, aj []Idx, ax []Val, d []Val, cm []int, seeds []int) error {
	n := len(ap) - 1
	k := len(seeds)
	if err := validateSeeds(n, seeds); err != nil {
		return err
	}

	inf := csr.Infinity[Val]()
	for i := 0; i < n; i++ {
		d[i] = inf
		cm[i] = -1
	}
	for a, s := range seeds {
		d[s] = 0
		cm[s] = a
	}

	if err := BellmanFordBalanced(ap, aj, ax, d, cm, k); err != nil {
		return err
	}

	icp, ici, l, count, err := Incidence(n, k, cm)
	if err != nil {
		return err
	}

	for a := 0; a < k; a++ {
		center, err := Center(ap, aj, ax, cm, a, icp, ici, l, count)
		if err != nil {
			return err
		}
		if cm[center] != a {
			return fmt.Errorf("cluster.LloydExact: cluster %d center %d: %w", a, center, ErrCenterClusterMismatch)
		}
		seeds[a] = center
	}

	return nil
}
