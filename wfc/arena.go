package wfc

import "github.com/katalvlaran/graphwfc/pattern"

// Arena owns every Cell created during one Generator run plus the
// output-graph adjacency being built between them. Neighbor lists are
// insertion-ordered, since BFS tie-breaking and stub-pair generation both
// depend on that order (edge-insertion order, per the ordering guarantees
// ConstraintPropagator and StubConnector rely on).
type Arena struct {
	cells     map[CellID]*Cell
	adjacency map[CellID][]CellID
	nextID    CellID
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{
		cells:     make(map[CellID]*Cell),
		adjacency: make(map[CellID][]CellID),
	}
}

// NewCell allocates and registers a fresh open cell with the given domain,
// returning its id.
func (a *Arena) NewCell(allPIDs []pattern.PID) CellID {
	id := a.nextID
	a.nextID++
	a.cells[id] = NewCell(allPIDs)
	a.adjacency[id] = nil
	return id
}

// Cell returns the cell registered under id, or nil if absent.
func (a *Arena) Cell(id CellID) *Cell {
	return a.cells[id]
}

// Link records an undirected adjacency between u and v, appending to each
// side's neighbor list exactly once (idempotent on repeated calls).
func (a *Arena) Link(u, v CellID) {
	if u == v {
		return
	}
	if !a.adjacent(u, v) {
		a.adjacency[u] = append(a.adjacency[u], v)
		a.adjacency[v] = append(a.adjacency[v], u)
	}
}

func (a *Arena) adjacent(u, v CellID) bool {
	for _, n := range a.adjacency[u] {
		if n == v {
			return true
		}
	}
	return false
}

// Neighbors returns u's adjacent cell ids in insertion order.
func (a *Arena) Neighbors(u CellID) []CellID {
	return a.adjacency[u]
}

// Degree returns the number of edges currently recorded for u.
func (a *Arena) Degree(u CellID) int {
	return len(a.adjacency[u])
}

// AllIDs returns every registered cell id in allocation order.
func (a *Arena) AllIDs() []CellID {
	out := make([]CellID, 0, len(a.cells))
	for id := CellID(0); id < a.nextID; id++ {
		if _, ok := a.cells[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
