package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubConnector_ConnectsCompatibleAdjacentPair(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	u := arena.NewCell(cat.AllPIDs()) // will collapse to node1's pattern (center degree 2)
	v := arena.NewCell(cat.AllPIDs()) // will collapse to node0's pattern (center degree 1)

	require.NoError(t, arena.Cell(u).CollapseTo(1, cat))
	require.NoError(t, arena.Cell(v).CollapseTo(0, cat))

	sc := NewStubConnector(arena, table)
	added := sc.Connect([]CellID{u, v})
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, arena.Degree(u))
	assert.Equal(t, 1, arena.Degree(v))
}

func TestStubConnector_SkipsIncompatiblePair(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	u := arena.NewCell(cat.AllPIDs()) // node0's pattern
	v := arena.NewCell(cat.AllPIDs()) // node2's pattern: not compatible with node0 at radius 1

	require.NoError(t, arena.Cell(u).CollapseTo(0, cat))
	require.NoError(t, arena.Cell(v).CollapseTo(2, cat))

	sc := NewStubConnector(arena, table)
	added := sc.Connect([]CellID{u, v})
	assert.Equal(t, 0, added)
	assert.Equal(t, 0, arena.Degree(u))
	assert.Equal(t, 0, arena.Degree(v))
}

func TestStubConnector_SkipsAlreadyAdjacentPair(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	u := arena.NewCell(cat.AllPIDs())
	v := arena.NewCell(cat.AllPIDs())
	arena.Link(u, v)

	require.NoError(t, arena.Cell(u).CollapseTo(1, cat))
	require.NoError(t, arena.Cell(v).CollapseTo(0, cat))

	sc := NewStubConnector(arena, table)
	added := sc.Connect([]CellID{u, v})
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, arena.Degree(u))
}

func TestStubConnector_RespectsStubBudget(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	// hub collapses to node1's pattern: center degree 2, so exactly one more
	// stub than a single pairing can satisfy once one edge is accepted.
	hub := arena.NewCell(cat.AllPIDs())
	a := arena.NewCell(cat.AllPIDs())
	b := arena.NewCell(cat.AllPIDs())

	require.NoError(t, arena.Cell(hub).CollapseTo(1, cat))
	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))
	require.NoError(t, arena.Cell(b).CollapseTo(0, cat))

	sc := NewStubConnector(arena, table)
	added := sc.Connect([]CellID{hub, a, b})
	// hub has 2 stubs, a and b each have 1; both pairs (hub,a) and (hub,b)
	// are candidates, so both should be accepted (hub's budget covers both).
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, arena.Degree(hub))
}

func TestStubConnector_NoOpenStubsIsNoop(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	u := arena.NewCell(cat.AllPIDs())
	v := arena.NewCell(cat.AllPIDs())
	require.NoError(t, arena.Cell(u).CollapseTo(2, cat)) // center degree 1
	require.NoError(t, arena.Cell(v).CollapseTo(0, cat)) // center degree 1
	arena.Link(u, v) // both already at target degree

	sc := NewStubConnector(arena, table)
	added := sc.Connect([]CellID{u, v})
	assert.Equal(t, 0, added)
}

func TestResourceAllocation_SharedPatternSpaceNeighbor(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())
	b := arena.NewCell(cat.AllPIDs())
	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))
	require.NoError(t, arena.Cell(b).CollapseTo(2, cat))

	sc := NewStubConnector(arena, table)
	ra := sc.resourceAllocation(a, b)
	// pid0 and pid2's radius-1 neighborhoods both contain pid1 (the shared
	// hub), which itself has |N1(1)| = 2 neighbors, so RA = 1/2.
	assert.InDelta(t, 0.5, ra, 1e-9)
}
