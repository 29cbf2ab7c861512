package wfc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwfc/compat"
	"github.com/katalvlaran/graphwfc/graphcore"
	"github.com/katalvlaran/graphwfc/pattern"
)

func catalogFor(t *testing.T, patterns []*pattern.Pattern, freq map[pattern.PID]int) *Catalog {
	t.Helper()
	return &Catalog{Patterns: patterns, Frequencies: freq}
}

// twoNodeLineFixture mirrors compat's own TwoNodeLine_Symmetric fixture: two
// distinct-label patterns, mutually compatible at radius 1 and self-
// incompatible (their labels differ).
func twoNodeLineFixture(t *testing.T) (*Catalog, *compat.Table) {
	t.Helper()
	g := graphcore.NewGraph()
	g.SetLabel(0, 1)
	g.SetLabel(1, 2)
	g.AddEdge(0, 1)

	patterns, freq, err := pattern.Extract(g, 1)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	table, err := compat.Build(patterns, 1)
	require.NoError(t, err)
	return catalogFor(t, patterns, freq), table
}

// chainFixture is a 3-node path with distinct labels, extracted at radius 1
// and compiled into a MaxRadius=1 table, so a cell 2 hops from a propagation
// source sits beyond the table's reach.
func chainFixture(t *testing.T) (*Catalog, *compat.Table) {
	t.Helper()
	g := graphcore.NewGraph()
	g.SetLabel(0, 1)
	g.SetLabel(1, 2)
	g.SetLabel(2, 3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	patterns, freq, err := pattern.Extract(g, 1)
	require.NoError(t, err)
	require.Len(t, patterns, 3)

	table, err := compat.Build(patterns, 1)
	require.NoError(t, err)
	return catalogFor(t, patterns, freq), table
}

func TestPropagator_PrunesNeighborDomain(t *testing.T) {
	cat, table := twoNodeLineFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())
	b := arena.NewCell(cat.AllPIDs())
	arena.Link(a, b)
	require.Equal(t, 2, arena.Cell(b).DomainSize())

	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))

	prop := NewPropagator(arena, table)
	forced, err := prop.Propagate([]CellID{a})
	require.NoError(t, err)
	require.Contains(t, forced, b)
	assert.Equal(t, 1, arena.Cell(b).DomainSize())
	assert.Equal(t, []pattern.PID{1}, arena.Cell(b).Domain())
}

func TestPropagator_DoesNotMutateCollapsedCells(t *testing.T) {
	cat, table := twoNodeLineFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())
	b := arena.NewCell(cat.AllPIDs())
	arena.Link(a, b)

	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))
	require.NoError(t, arena.Cell(b).CollapseTo(1, cat))

	prop := NewPropagator(arena, table)
	forced, err := prop.Propagate([]CellID{a})
	require.NoError(t, err)
	assert.Empty(t, forced)
	pid, ok := arena.Cell(b).CollapsedPID()
	require.True(t, ok)
	assert.Equal(t, pattern.PID(1), pid)
}

func TestPropagator_PassesThroughCollapsedCellsButStaysWithinMaxRadius(t *testing.T) {
	cat, table := chainFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())
	mid := arena.NewCell(cat.AllPIDs())
	far := arena.NewCell(cat.AllPIDs())
	arena.Link(a, mid)
	arena.Link(mid, far)

	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))
	require.NoError(t, arena.Cell(mid).CollapseTo(1, cat))

	prop := NewPropagator(arena, table)
	forced, err := prop.Propagate([]CellID{a})
	require.NoError(t, err)
	// mid is already collapsed, excluded from forced_list regardless.
	assert.NotContains(t, forced, mid)
	// far sits at depth 2 from seed a, beyond this table's MaxRadius of 1,
	// so it is passed through but left entirely unpruned.
	assert.Equal(t, 3, arena.Cell(far).DomainSize())
}

func TestPropagator_ContradictionOnEmptyDomain(t *testing.T) {
	cat, table := twoNodeLineFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())
	b := arena.NewCell(nil) // starts with an empty domain
	arena.Link(a, b)

	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))

	prop := NewPropagator(arena, table)
	_, err := prop.Propagate([]CellID{a})
	require.True(t, errors.Is(err, ErrContradiction))
}

func TestPropagator_RejectsUncollapsedSeed(t *testing.T) {
	cat, table := twoNodeLineFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())

	prop := NewPropagator(arena, table)
	_, err := prop.Propagate([]CellID{a})
	require.True(t, errors.Is(err, ErrIllegalState))
}

func TestPropagator_EnforceGlobal_FixedPoint(t *testing.T) {
	cat, table := twoNodeLineFixture(t)
	arena := NewArena()
	a := arena.NewCell(cat.AllPIDs())
	b := arena.NewCell(cat.AllPIDs())
	arena.Link(a, b)
	require.NoError(t, arena.Cell(a).CollapseTo(0, cat))

	prop := NewPropagator(arena, table)
	require.NoError(t, prop.EnforceGlobal())
	assert.Equal(t, 1, arena.Cell(b).DomainSize())

	// A second call is a no-op fixed point: nothing left to prune.
	require.NoError(t, prop.EnforceGlobal())
	assert.Equal(t, 1, arena.Cell(b).DomainSize())
}
