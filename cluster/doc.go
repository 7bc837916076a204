// Package cluster implements the clustering layer of the kernel library:
// cluster incidence indexing, exact graph-center via Floyd-Warshall, plain
// and balanced Bellman-Ford relaxation, and Lloyd clustering in its
// approximate and exact forms.
//
// Lloyd (both variants) composes Bellman-Ford propagation rounds: the
// exact variant additionally invokes Incidence then Center once per
// cluster after a single, self-converging balanced Bellman-Ford pass.
package cluster
