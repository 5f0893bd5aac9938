package dag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringGraph(ids ...string) *Graph[string] {
	g := New(strings.Compare)
	for _, id := range ids {
		g.AddNode(id)
	}
	return g
}

func TestNew(t *testing.T) {
	g := New(strings.Compare)
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
	assert.Equal(t, 0, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New(strings.Compare)

	g.AddNode("a")
	assert.Len(t, g.nodes, 1)
	nodeA, ok := g.nodes["a"]
	require.True(t, ok)
	assert.Equal(t, "a", nodeA.id)
	assert.NotNil(t, nodeA.deps)
	assert.NotNil(t, nodeA.dependents)

	g.AddNode("a") // idempotent
	assert.Len(t, g.nodes, 1)

	g.AddNode("b")
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.HasNode("b"))
	assert.False(t, g.HasNode("c"))
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := newStringGraph("a", "b")

		err := g.AddEdge("a", "b") // b depends on a
		require.NoError(t, err)

		nodeA := g.nodes["a"]
		nodeB := g.nodes["b"]

		assert.Contains(t, nodeA.dependents, "b")
		assert.Equal(t, nodeB, nodeA.dependents["b"])
		assert.Contains(t, nodeB.deps, "a")
		assert.Equal(t, nodeA, nodeB.deps["a"])
	})

	t.Run("error cases", func(t *testing.T) {
		g := newStringGraph("a", "b")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "destination node not found")

		err = g.AddEdge("a", "a")
		assert.ErrorContains(t, err, "self-referential edge")
	})
}

func TestDependencies(t *testing.T) {
	g := newStringGraph("a", "b", "c")
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))

	deps, err := g.Dependencies("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, deps)

	deps, err = g.Dependencies("a")
	require.NoError(t, err)
	assert.Empty(t, deps)

	_, err = g.Dependencies("dne")
	assert.ErrorContains(t, err, "node not found")
}

func TestTopologicalOrder(t *testing.T) {
	t.Run("orders dependencies first", func(t *testing.T) {
		g := newStringGraph("d", "c", "b", "a")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("a", "c"))
		require.NoError(t, g.AddEdge("c", "d"))

		order, blocked := g.TopologicalOrder()
		assert.Equal(t, []string{"a", "b", "c", "d"}, order)
		assert.Empty(t, blocked)
	})

	t.Run("ties are broken by compare", func(t *testing.T) {
		order, blocked := newStringGraph("c", "a", "b").TopologicalOrder()
		assert.Equal(t, []string{"a", "b", "c"}, order)
		assert.Empty(t, blocked)
	})

	t.Run("cycle and its dependents are blocked", func(t *testing.T) {
		g := newStringGraph("a", "x", "y", "z")
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "x"))
		require.NoError(t, g.AddEdge("y", "z"))

		order, blocked := g.TopologicalOrder()
		assert.Equal(t, []string{"a"}, order)
		assert.Equal(t, []string{"x", "y", "z"}, blocked)
	})
}

func TestCycles(t *testing.T) {
	g := newStringGraph("a", "b", "c", "p", "q", "z")
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("q", "p"))
	require.NoError(t, g.AddEdge("p", "q"))
	require.NoError(t, g.AddEdge("c", "z")) // downstream, not on a cycle

	assert.Equal(t, [][]string{{"a", "b", "c"}, {"p", "q"}}, g.Cycles())
	assert.Empty(t, newStringGraph("a", "b").Cycles())
}
