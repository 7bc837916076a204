package mis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsecoarsen/amgkernel/mis"
)

// TestSerial_Path5 reproduces spec scenario S1: a 5-vertex path, all active,
// A=0, C=1, F=2. Expected x=[1,2,1,2,1], count 3.
func TestSerial_Path5(t *testing.T) {
	n := 5
	ap := []int32{0, 1, 3, 5, 7, 8}
	aj := []int32{1, 0, 2, 1, 3, 2, 4, 3}
	x := []int32{0, 0, 0, 0, 0}

	count := mis.Serial(n, ap, aj, int32(0), int32(1), int32(2), x)

	require.Equal(t, 3, count)
	require.Equal(t, []int32{1, 2, 1, 2, 1}, x)
}

// TestSerial_Independence checks invariant 1: no two promoted (cVal)
// vertices are adjacent, on a denser graph (4-cycle with a diagonal).
func TestSerial_Independence(t *testing.T) {
	// 0-1, 1-2, 2-3, 3-0, 0-2
	n := 4
	ap := []int32{0, 3, 5, 8, 10}
	aj := []int32{1, 3, 2, 0, 2, 0, 1, 3, 2, 0}
	x := make([]int32, n)

	mis.Serial(n, ap, aj, int32(0), int32(1), int32(2), x)

	for u := 0; u < n; u++ {
		if x[u] != 1 {
			continue
		}
		for _, v := range aj[ap[u]:ap[u+1]] {
			require.NotEqual(t, int32(1), x[v], "promoted vertices %d and %d are adjacent", u, v)
		}
	}
}

// TestSerial_Maximality checks invariant 2: every non-promoted,
// originally-active vertex has at least one promoted neighbor.
func TestSerial_Maximality(t *testing.T) {
	n := 5
	ap := []int32{0, 1, 3, 5, 7, 8}
	aj := []int32{1, 0, 2, 1, 3, 2, 4, 3}
	x := make([]int32, n)

	mis.Serial(n, ap, aj, int32(0), int32(1), int32(2), x)

	for i := 0; i < n; i++ {
		if x[i] != 2 { // not excluded: either promoted or untouched
			continue
		}
		hasPromotedNeighbor := false
		for _, j := range aj[ap[i]:ap[i+1]] {
			if x[j] == 1 {
				hasPromotedNeighbor = true
				break
			}
		}
		require.True(t, hasPromotedNeighbor, "excluded vertex %d has no promoted neighbor", i)
	}
}
