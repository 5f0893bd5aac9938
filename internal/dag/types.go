package dag

import "sync"

// Graph is a collection of nodes keyed by K and their dependency edges. All
// operations on the graph are concurrency-safe.
type Graph[K comparable] struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[K]*node[K]
	// compare orders IDs so that every listing is deterministic.
	compare func(a, b K) int
}

// node is a single vertex. It stays un-exported so callers work with IDs
// rather than with the struct itself.
type node[K comparable] struct {
	id K
	// deps holds the nodes this node depends on (predecessors).
	deps map[K]*node[K]
	// dependents holds the nodes that depend on this node (successors).
	dependents map[K]*node[K]
}
