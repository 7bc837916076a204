package coloring_test

import (
	"testing"

	"github.com/sparsecoarsen/amgkernel/coloring"
)

// TestLDF_K4 checks that LDF colors K4 validly.
func TestLDF_K4(t *testing.T) {
	n, ap, aj := k4CSR()
	x := make([]int32, n)
	y := []float64{0.3, 0.1, 0.8, 0.5}

	coloring.LDF(n, ap, aj, x, y)

	assertValidColoring(t, n, ap, aj, x)
}

// TestLDF_Star checks a star graph (hub has highest uncolored-degree
// pressure) colors validly.
func TestLDF_Star(t *testing.T) {
	n := 5
	ap := []int32{0, 4, 5, 6, 7, 8}
	aj := []int32{1, 2, 3, 4, 0, 0, 0, 0}
	x := make([]int32, n)
	y := []float64{0, 0, 0, 0, 0}

	coloring.LDF(n, ap, aj, x, y)

	assertValidColoring(t, n, ap, aj, x)
}
