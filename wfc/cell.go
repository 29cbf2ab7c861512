package wfc

import (
	"sort"

	"github.com/katalvlaran/graphwfc/pattern"
)

// CellID is a stable integer index into a Generator run's cell arena.
type CellID int

// Cell is an output-graph vertex under construction: a domain of candidate
// pattern ids that is pruned (possibly many times) and then collapsed
// exactly once.
type Cell struct {
	domain    map[pattern.PID]struct{}
	collapsed bool
	pid       pattern.PID
	label     int
	hasLabel  bool
	degree    int
	hasDegree bool
	version   int // bumped on every domain mutation
}

// NewCell returns an open cell whose domain is every pid in allPIDs.
func NewCell(allPIDs []pattern.PID) *Cell {
	d := make(map[pattern.PID]struct{}, len(allPIDs))
	for _, p := range allPIDs {
		d[p] = struct{}{}
	}
	return &Cell{domain: d}
}

// Domain returns the cell's current domain, sorted ascending by pid for
// deterministic downstream iteration.
func (c *Cell) Domain() []pattern.PID {
	out := make([]pattern.PID, 0, len(c.domain))
	for p := range c.domain {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DomainSize returns len(Domain()) without allocating.
func (c *Cell) DomainSize() int {
	return len(c.domain)
}

// IsCollapsed reports whether CollapseTo has succeeded on this cell.
func (c *Cell) IsCollapsed() bool {
	return c.collapsed
}

// CollapsedPID returns the collapsed pattern id and true, or the zero value
// and false if the cell is not yet collapsed.
func (c *Cell) CollapsedPID() (pattern.PID, bool) {
	if !c.collapsed {
		return 0, false
	}
	return c.pid, true
}

// CenterLabel returns the label assigned at collapse, or false if not yet
// collapsed.
func (c *Cell) CenterLabel() (int, bool) {
	return c.label, c.hasLabel
}

// TargetDegree returns the target degree assigned at collapse, or false if
// not yet collapsed.
func (c *Cell) TargetDegree() (int, bool) {
	return c.degree, c.hasDegree
}

// Version returns a counter bumped on every domain mutation (prune or
// collapse), usable by callers implementing a poll-and-discard stale-entry
// policy over a cached priority queue.
func (c *Cell) Version() int {
	return c.version
}

// Prune retains only domain ∩ allowed. It returns ErrIllegalState if the
// cell is already collapsed, and ErrContradiction if the resulting domain is
// empty (the domain is still updated to empty in that case — the cell is
// left in a terminal non-viable state for the caller to observe and react
// to; the Generator's policy is to accept the contradiction, not retry).
func (c *Cell) Prune(allowed map[pattern.PID]struct{}) error {
	if c.collapsed {
		return ErrIllegalState
	}
	next := make(map[pattern.PID]struct{}, len(c.domain))
	for p := range c.domain {
		if _, ok := allowed[p]; ok {
			next[p] = struct{}{}
		}
	}
	c.domain = next
	c.version++
	if len(c.domain) == 0 {
		return ErrContradiction
	}
	return nil
}

// CollapseTo fixes the cell's domain to exactly {pid}, requiring pid be a
// current domain member, and records the center label and target degree
// from catalog. It is terminal: a second call on an already-collapsed cell
// fails with ErrIllegalState.
func (c *Cell) CollapseTo(pid pattern.PID, catalog *Catalog) error {
	if c.collapsed {
		return ErrIllegalState
	}
	if _, ok := c.domain[pid]; !ok {
		return ErrIllegalState
	}
	p := catalog.Pattern(pid)
	c.domain = map[pattern.PID]struct{}{pid: {}}
	c.collapsed = true
	c.pid = pid
	c.label = p.CenterLabel
	c.hasLabel = true
	c.degree = p.CenterDegree
	c.hasDegree = true
	c.version++
	return nil
}
