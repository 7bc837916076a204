package bfs

import "github.com/sparsecoarsen/amgkernel/csr"

// BFS traverses the graph described by (ap, aj) starting from seed. level
// must have length n and be pre-filled with -1 by the caller; order must
// have length >= n. BFS places seed at order[0], level[seed]=0, then
// processes each level's window of order in turn: for every vertex in the
// current window, it scans outgoing edges and appends any neighbor with
// level==-1 to order, assigning it the next level. It returns the number
// of reached vertices; order[:count] is the BFS visitation order.
//
// Unreached vertices keep level==-1 and do not appear in order[:count].
//
// Complexity: O(V + E).
func BFS[Idx csr.Index](ap, aj []Idx, seed int, order []int, level []int) int {
	level[seed] = 0
	order[0] = seed
	count := 1

	levelBegin, levelEnd := 0, 1
	currentLevel := 1
	for levelBegin < levelEnd {
		for w := levelBegin; w < levelEnd; w++ {
			u := order[w]
			for _, v := range aj[ap[u]:ap[u+1]] {
				j := int(v)
				if level[j] == -1 {
					level[j] = currentLevel
					order[count] = j
					count++
				}
			}
		}
		levelBegin = levelEnd
		levelEnd = count
		currentLevel++
	}

	return count
}
