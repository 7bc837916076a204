package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsecoarsen/amgkernel/components"
)

// TestConnected_Scenario reproduces spec scenario S5: two disjoint edges
// {0-1}, {2-3}. Expected components=[0,0,1,1], k=2.
func TestConnected_Scenario(t *testing.T) {
	n := 4
	ap := []int32{0, 1, 2, 3, 4}
	aj := []int32{1, 0, 3, 2}
	comps := make([]int, n)

	k := components.Connected(n, ap, aj, comps)

	require.Equal(t, 2, k)
	require.Equal(t, []int{0, 0, 1, 1}, comps)
}

// TestConnected_SingleComponent checks a fully connected path yields one
// component labeled 0 for every vertex.
func TestConnected_SingleComponent(t *testing.T) {
	n := 5
	ap := []int32{0, 1, 3, 5, 7, 8}
	aj := []int32{1, 0, 2, 1, 3, 2, 4, 3}
	comps := make([]int, n)

	k := components.Connected(n, ap, aj, comps)

	require.Equal(t, 1, k)
	for _, c := range comps {
		require.Equal(t, 0, c)
	}
}

// TestConnected_Isolated checks that isolated vertices each form their own
// singleton component.
func TestConnected_Isolated(t *testing.T) {
	n := 3
	ap := []int32{0, 0, 0, 0}
	aj := []int32{}
	comps := make([]int, n)

	k := components.Connected(n, ap, aj, comps)

	require.Equal(t, 3, k)
	require.Equal(t, []int{0, 1, 2}, comps)
}
