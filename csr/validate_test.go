package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsecoarsen/amgkernel/csr"
)

// TestValidate_Valid checks that a well-formed path-graph CSR view passes.
func TestValidate_Valid(t *testing.T) {
	g := &csr.Graph[int32, float64]{
		N:  3,
		Ap: []int32{0, 1, 3, 4},
		Aj: []int32{1, 0, 2, 1},
	}
	require.NoError(t, g.Validate())
}

// TestValidate_RowPointerLength checks detection of a mis-sized Ap.
func TestValidate_RowPointerLength(t *testing.T) {
	g := &csr.Graph[int32, float64]{
		N:  3,
		Ap: []int32{0, 1, 3},
		Aj: []int32{1, 0, 2, 1},
	}
	require.ErrorIs(t, g.Validate(), csr.ErrRowPointerLength)
}

// TestValidate_RowPointerOrder checks that a decreasing Ap is reported as
// ErrRowPointerOrder.
func TestValidate_RowPointerOrder(t *testing.T) {
	g := &csr.Graph[int32, float64]{
		N:  2,
		Ap: []int32{0, 2, 1},
		Aj: []int32{1, 1},
	}
	require.ErrorIs(t, g.Validate(), csr.ErrRowPointerOrder)
}

// TestValidate_ColumnIndexRange checks detection of an out-of-range Aj entry.
func TestValidate_ColumnIndexRange(t *testing.T) {
	g := &csr.Graph[int32, float64]{
		N:  2,
		Ap: []int32{0, 1, 1},
		Aj: []int32{5},
	}
	require.ErrorIs(t, g.Validate(), csr.ErrColumnIndexRange)
}

// TestValidate_WeightLength checks detection of a mis-sized Ax.
func TestValidate_WeightLength(t *testing.T) {
	g := &csr.Graph[int32, float64]{
		N:  2,
		Ap: []int32{0, 1, 1},
		Aj: []int32{1},
		Ax: []float64{1, 2},
	}
	require.ErrorIs(t, g.Validate(), csr.ErrWeightLength)
}

// TestInfinity_Types checks Infinity returns the expected max-finite value
// per concrete numeric type.
func TestInfinity_Types(t *testing.T) {
	require.Equal(t, int64(9223372036854775807), csr.Infinity[int64]())
	require.Equal(t, int32(2147483647), csr.Infinity[int32]())
	require.Greater(t, csr.Infinity[float64](), 1e300)
}
