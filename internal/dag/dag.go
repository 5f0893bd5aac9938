package dag

import (
	"fmt"
	"maps"
	"slices"
)

// New creates an empty Graph. compare orders node IDs wherever the graph
// returns more than one of them.
func New[K comparable](compare func(a, b K) int) *Graph[K] {
	return &Graph[K]{
		nodes:   make(map[K]*node[K]),
		compare: compare,
	}
}

// AddNode adds a node with the given ID. Adding an existing ID does nothing.
func (g *Graph[K]) AddNode(id K) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node[K]{
		id:         id,
		deps:       make(map[K]*node[K]),
		dependents: make(map[K]*node[K]),
	}
}

// HasNode reports whether id is part of the graph.
func (g *Graph[K]) HasNode(id K) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return len(g.nodes)
}

// AddEdge records that toID depends on fromID. It fails if either node does
// not exist or if the edge would point a node at itself.
func (g *Graph[K]) AddEdge(fromID, toID K) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %v -> %v", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %v", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %v", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// Dependencies returns the sorted IDs that the given node depends on.
func (g *Graph[K]) Dependencies(id K) ([]K, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %v", id)
	}
	return g.sorted(n.deps), nil
}

// TopologicalOrder returns the nodes that can be ordered so that each one
// follows all of its dependencies (Kahn's algorithm, ties broken by compare),
// and separately the nodes that cannot: those on a cycle or depending on one.
func (g *Graph[K]) TopologicalOrder() (order []K, blocked []K) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	indegree := make(map[K]int, len(g.nodes))
	var ready []K
	for id, n := range g.nodes {
		indegree[id] = len(n.deps)
		if len(n.deps) == 0 {
			ready = append(ready, id)
		}
	}
	slices.SortFunc(ready, g.compare)

	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		var unlocked []K
		for depID := range g.nodes[id].dependents {
			indegree[depID]--
			if indegree[depID] == 0 {
				unlocked = append(unlocked, depID)
			}
		}
		slices.SortFunc(unlocked, g.compare)
		ready = append(ready, unlocked...)
	}

	for id, remaining := range indegree {
		if remaining > 0 {
			blocked = append(blocked, id)
		}
	}
	slices.SortFunc(blocked, g.compare)
	return order, blocked
}

// Cycles returns every strongly connected component with more than one node,
// each sorted, in order of their smallest member (Tarjan's algorithm).
func (g *Graph[K]) Cycles() [][]K {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var (
		index   = make(map[K]int)
		lowlink = make(map[K]int)
		onStack = make(map[K]bool)
		stack   []K
		next    int
		cycles  [][]K
	)

	var connect func(id K)
	connect = func(id K) {
		index[id] = next
		lowlink[id] = next
		next++
		stack = append(stack, id)
		onStack[id] = true

		for _, depID := range g.sorted(g.nodes[id].dependents) {
			if _, seen := index[depID]; !seen {
				connect(depID)
				lowlink[id] = min(lowlink[id], lowlink[depID])
			} else if onStack[depID] {
				lowlink[id] = min(lowlink[id], index[depID])
			}
		}

		if lowlink[id] != index[id] {
			return
		}
		var component []K
		for {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[top] = false
			component = append(component, top)
			if top == id {
				break
			}
		}
		if len(component) > 1 {
			slices.SortFunc(component, g.compare)
			cycles = append(cycles, component)
		}
	}

	for _, id := range g.sorted(g.nodes) {
		if _, seen := index[id]; !seen {
			connect(id)
		}
	}

	slices.SortFunc(cycles, func(a, b []K) int { return g.compare(a[0], b[0]) })
	return cycles
}

// sorted returns the keys of m ordered by compare. Callers hold the mutex.
func (g *Graph[K]) sorted(m map[K]*node[K]) []K {
	ids := slices.Collect(maps.Keys(m))
	slices.SortFunc(ids, g.compare)
	return ids
}
