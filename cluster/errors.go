package cluster

import "errors"

// Sentinel errors for cluster-package precondition violations.
var (
	// ErrEmptyCluster indicates Incidence found a cluster id with no
	// assigned members.
	ErrEmptyCluster = errors.New("cluster: every cluster id in [0,k) must be non-empty")

	// ErrDisconnected indicates Center found a cluster that is not
	// internally connected (some pairwise distance stayed infinite).
	ErrDisconnected = errors.New("cluster: cluster is not internally connected")

	// ErrIterationCap indicates BellmanFordBalanced exceeded its n^3
	// safety cap without converging.
	ErrIterationCap = errors.New("cluster: balanced Bellman-Ford exceeded iteration cap")

	// ErrSeedOutOfRange indicates a Lloyd seed index is outside [0, n).
	ErrSeedOutOfRange = errors.New("cluster: seed index out of range")

	// ErrCenterClusterMismatch indicates the exact variant's computed
	// center does not belong to the cluster it was computed for.
	ErrCenterClusterMismatch = errors.New("cluster: computed center does not belong to its cluster")
)
