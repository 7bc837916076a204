// Opt-in precondition checker. No kernel calls this internally: the CSR
// invariants are required of callers, not checked by the kernels.
// Validate exists for callers that want a single O(N+nnz) check before a
// batch of kernel calls.
package csr

import "fmt"

// Validate checks the structural invariants of g: Ap has length N+1, is
// non-decreasing, Ap[0]==0, Ap[N]==len(Aj), every Aj entry lies in
// [0, N), and (if weighted) Ax parallels Aj in length. It does not check
// symmetry; that is a correctness requirement for some kernels, not a
// structural one, and is left to the caller.
func (g *Graph[Idx, Val]) Validate() error {
	if g.N < 0 {
		return fmt.Errorf("csr.Validate: n=%d: %w", g.N, ErrNegativeSize)
	}
	if len(g.Ap) != g.N+1 {
		return fmt.Errorf("csr.Validate: len(Ap)=%d want %d: %w", len(g.Ap), g.N+1, ErrRowPointerLength)
	}
	if len(g.Ap) > 0 && g.Ap[0] != 0 {
		return fmt.Errorf("csr.Validate: Ap[0]=%d: %w", g.Ap[0], ErrRowPointerOrder)
	}
	nnz := Idx(len(g.Aj))
	for i := 0; i < g.N; i++ {
		if g.Ap[i] > g.Ap[i+1] {
			return fmt.Errorf("csr.Validate: Ap[%d]=%d > Ap[%d]=%d: %w", i, g.Ap[i], i+1, g.Ap[i+1], ErrRowPointerOrder)
		}
	}
	if g.N > 0 && g.Ap[g.N] != nnz {
		return fmt.Errorf("csr.Validate: Ap[n]=%d != len(Aj)=%d: %w", g.Ap[g.N], nnz, ErrRowPointerOrder)
	}
	for jj, col := range g.Aj {
		if int64(col) < 0 || int64(col) >= int64(g.N) {
			return fmt.Errorf("csr.Validate: Aj[%d]=%d out of [0,%d): %w", jj, col, g.N, ErrColumnIndexRange)
		}
	}
	if g.Ax != nil && len(g.Ax) != len(g.Aj) {
		return fmt.Errorf("csr.Validate: len(Ax)=%d != len(Aj)=%d: %w", len(g.Ax), len(g.Aj), ErrWeightLength)
	}

	return nil
}
