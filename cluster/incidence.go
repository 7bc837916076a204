// Incidence indexing builds a CSC-style cluster-to-nodes index plus a
// local-index map from a per-node cluster label.
//
// The sort order, descending by cluster label with ties broken descending
// by global index, is a fixed convention callers may rely on. ICp is
// indexed directly by cluster label, not by scan rank: this is the only
// indexing under which the round-trip invariant ICi[ICp[cm[i]]+L[i]]==i
// holds when ICi is laid out in descending-label order.
package cluster

import (
	"fmt"
	"sort"
)

// Incidence builds ICp (length k+1, ICp[a] is the start offset of cluster
// a's block in ICi, not an ascending range boundary; see below), ICi
// (length n, a permutation of [0,n) grouped by cluster), L (length n,
// local index within cluster), and count (length k, each cluster's member
// count) from cm (length n, cm[i] in [0,k)).
//
// ICi is sorted by the comparator (cm[i], i), both descending, so cluster
// a's members occupy ICi[ICp[a] : ICp[a]+count[a]], not
// ICi[ICp[a]:ICp[a+1]], since the next slot in storage order belongs to
// cluster a-1, not a+1. Callers needing a cluster's member range must use
// the returned count, not adjacent ICp entries.
//
// Every cluster id in [0,k) must have at least one member; Incidence
// returns ErrEmptyCluster otherwise.
//
// Invariant maintained: ICi[ICp[cm[i]]+L[i]] == i for every i.
//
// Complexity: O(n log n) for the sort, O(n) for the scans.
func Incidence(n, k int, cm []int) (icp, ici, l, count []int, err error) {
	count = make([]int, k)
	for i := 0; i < n; i++ {
		count[cm[i]]++
	}
	for c := 0; c < k; c++ {
		if count[c] == 0 {
			return nil, nil, nil, nil, fmt.Errorf("cluster.Incidence: cluster %d: %w", c, ErrEmptyCluster)
		}
	}

	ici = make([]int, n)
	for i := range ici {
		ici[i] = i
	}
	sort.Slice(ici, func(x, y int) bool {
		a, b := ici[x], ici[y]
		if cm[a] != cm[b] {
			return cm[a] > cm[b]
		}
		return a > b
	})

	// Clusters appear in ICi in strictly descending label order, so
	// cluster c's block starts right after every cluster with a higher
	// label: start[c] is the sum of count[c'] for c' > c.
	icp = make([]int, k+1)
	icp[k] = n
	running := 0
	for c := k - 1; c >= 0; c-- {
		icp[c] = running
		running += count[c]
	}

	l = make([]int, n)
	for c := 0; c < k; c++ {
		for m := 0; m < count[c]; m++ {
			l[ici[icp[c]+m]] = m
		}
	}

	return icp, ici, l, count, nil
}
