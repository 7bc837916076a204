package csr

import "errors"

// Sentinel errors for CSR precondition violations. Individual kernels
// define their own sentinels for kernel-specific preconditions (cluster
// emptiness, disconnected clusters, iteration caps); these cover the
// shared CSR-shape checks exposed by Validate.
var (
	// ErrNegativeSize indicates a negative vertex count was supplied.
	ErrNegativeSize = errors.New("csr: n must be non-negative")

	// ErrRowPointerLength indicates Ap does not have length n+1.
	ErrRowPointerLength = errors.New("csr: Ap must have length n+1")

	// ErrRowPointerOrder indicates Ap is not non-decreasing, or its
	// endpoints don't match Ap[0]==0 / Ap[n]==len(Aj).
	ErrRowPointerOrder = errors.New("csr: Ap must be non-decreasing with Ap[0]==0 and Ap[n]==len(Aj)")

	// ErrColumnIndexRange indicates some Aj[jj] falls outside [0, n).
	ErrColumnIndexRange = errors.New("csr: Aj entries must be in [0, n)")

	// ErrWeightLength indicates Ax is non-nil but its length != len(Aj).
	ErrWeightLength = errors.New("csr: Ax must have the same length as Aj")
)
