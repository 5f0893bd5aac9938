// Package dag holds a small directed dependency graph with cycle detection
// and topological ordering. Edges point from a dependency to its dependent,
// so a topological order lists every node after everything it depends on.
package dag
