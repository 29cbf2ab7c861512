package graphcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateNode(t *testing.T) {
	g := NewGraph()
	require.False(t, g.HasNode(1))
	n := g.GetOrCreateNode(1)
	require.NotNil(t, n)
	assert.True(t, g.HasNode(1))
	assert.Equal(t, 0, n.Label)

	// idempotence: same pointer-equivalent node returned
	n2 := g.GetOrCreateNode(1)
	assert.Equal(t, n.ID, n2.ID)
	assert.Equal(t, 1, g.NodeCount())
}

func TestSetLabel(t *testing.T) {
	g := NewGraph()
	g.SetLabel(5, 42)
	label, ok := g.Label(5)
	require.True(t, ok)
	assert.Equal(t, 42, label)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := NewGraph()
	ok := g.AddEdge(1, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, g.NodeCount())
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := NewGraph()
	assert.True(t, g.AddEdge(1, 2))
	assert.False(t, g.AddEdge(1, 2))
	assert.False(t, g.AddEdge(2, 1)) // unordered-pair equality
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, []int{1}, g.Neighbors(2))
}

func TestAllNodes_InsertionOrder(t *testing.T) {
	g := NewGraph()
	g.GetOrCreateNode(3)
	g.GetOrCreateNode(1)
	g.AddEdge(7, 2)
	var ids []int
	for _, n := range g.AllNodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int{3, 1, 7, 2}, ids)
}

func TestNeighbors_Degree(t *testing.T) {
	g := NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	assert.Equal(t, 3, g.Degree(0))
	assert.ElementsMatch(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Nil(t, g.Neighbors(99))
}
