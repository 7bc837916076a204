// Package components labels the connected components of a csr.Graph using
// an iterative, explicit-stack depth-first search.
//
// No recursion is used: the graph may have millions of vertices, and a
// recursive DFS would risk stack exhaustion on a long path or deep tree.
package components
