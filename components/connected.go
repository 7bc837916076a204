package components

import "github.com/sparsecoarsen/amgkernel/csr"

// Connected labels every vertex of the graph described by (n, ap, aj) with
// its connected-component id in [0, k) and returns k. components must have
// length n; it is reset to -1 internally before labeling.
//
// Vertices are seeded for a new component in ascending index order. Each
// component is expanded with an explicit stack (push seed, pop, push
// unlabeled neighbors), with no recursion.
//
// Complexity: O(V + E).
func Connected[Idx csr.Index](n int, ap, aj []Idx, components []int) int {
	for i := range components {
		components[i] = -1
	}

	k := 0
	stack := make([]int, 0, n)
	for seed := 0; seed < n; seed++ {
		if components[seed] != -1 {
			continue
		}

		components[seed] = k
		stack = append(stack, seed)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range aj[ap[u]:ap[u+1]] {
				j := int(v)
				if components[j] == -1 {
					components[j] = k
					stack = append(stack, j)
				}
			}
		}
		k++
	}

	return k
}
