// Package csr defines the read-only compressed-sparse-row adjacency view
// shared by every kernel in this module, plus the generic numeric
// constraints (Index, Value) the kernels are parameterized over.
//
// A csr.Graph never mutates and never allocates on the caller's behalf: Ap,
// Aj, and the optional Ax are owned and sized by the caller for the
// lifetime of a single kernel call. Kernels read Aj[Ap[i]:Ap[i+1]] to
// enumerate the neighbors of vertex i; they do not validate the CSR
// invariants themselves (see Validate for an opt-in, caller-invoked check).
//
// Symmetry of the adjacency is required for correctness of MIS, coloring,
// BFS, and connected components, but is not enforced here; it is the
// caller's responsibility.
package csr
