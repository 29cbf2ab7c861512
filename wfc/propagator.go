package wfc

import (
	"fmt"

	"github.com/katalvlaran/graphwfc/compat"
	"github.com/katalvlaran/graphwfc/pattern"
)

/*
Propagator — constraint propagation over the output-graph adjacency

Description:

	Propagate walks outward from a set of newly-collapsed seed cells,
	pruning each reached uncollapsed cell's domain against the
	compatibility table at the observed radius. Collapsed cells are not
	pruned (they're already fixed) but BFS still passes through them to
	reach cells beyond.

Steps:

  1. For each seed, BFS its arena neighbors, tracking depth from 0.
  2. At depth d+1 <= table.MaxRadius, prune the neighbor's domain by
     table.Allowed(d+1, seedPid); enqueue it either way to keep walking.
  3. A cell already visited in the same seed's walk is not re-pruned at a
     greater depth; each seed keeps its own visited set.
  4. Cells whose domain becomes a singleton are reported in forced_list.

Complexity: O(V + E) per seed; the walk covers the seed's whole connected
component, and only cells within MaxRadius are pruned.
*/
type Propagator struct {
	arena *Arena
	table *compat.Table
}

// NewPropagator returns a Propagator over arena's cell adjacency and table.
func NewPropagator(arena *Arena, table *compat.Table) *Propagator {
	return &Propagator{arena: arena, table: table}
}

type propagateQueueItem struct {
	id    CellID
	depth int
}

// Propagate runs one BFS per seed (each with a fixed propagating pid — the
// seed's own collapsed pid — held constant for that seed's whole walk), and
// reports every cell whose domain became exactly singleton as a result
// (excluding cells that were already collapsed before this call). A cell's
// domain is intersected with table.Allowed(depth, seedPid) for every seed
// whose BFS reaches it, so a cell reachable from two seeds is constrained by
// both.
func (p *Propagator) Propagate(seeds []CellID) ([]CellID, error) {
	wasCollapsed := make(map[CellID]bool, len(p.arena.cells))
	for id := range p.arena.cells {
		wasCollapsed[id] = p.arena.Cell(id).IsCollapsed()
	}

	for _, seed := range seeds {
		seedCell := p.arena.Cell(seed)
		seedPid, ok := seedCell.CollapsedPID()
		if !ok {
			return nil, fmt.Errorf("propagate: seed cell %d is not collapsed: %w", seed, ErrIllegalState)
		}
		if err := p.propagateFromSeed(seed, seedPid); err != nil {
			return nil, err
		}
	}

	var forced []CellID
	for _, id := range p.arena.AllIDs() {
		cell := p.arena.Cell(id)
		if wasCollapsed[id] || cell.IsCollapsed() {
			continue
		}
		if cell.DomainSize() == 1 {
			forced = append(forced, id)
		}
	}
	return forced, nil
}

// propagateFromSeed runs a single BFS from seed, holding seedPid fixed for
// every pruned neighbor regardless of how many collapsed cells the walk
// passes through on the way. Collapsed cells are enqueued (BFS continues
// through them) but never pruned.
func (p *Propagator) propagateFromSeed(seed CellID, seedPid pattern.PID) error {
	visited := map[CellID]int{seed: 0}
	queue := []propagateQueueItem{{id: seed, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, nbr := range p.arena.Neighbors(item.id) {
			d := item.depth + 1
			if prev, ok := visited[nbr]; ok && prev <= d {
				continue
			}
			visited[nbr] = d
			queue = append(queue, propagateQueueItem{id: nbr, depth: d})

			nbrCell := p.arena.Cell(nbr)
			if nbrCell.IsCollapsed() {
				continue
			}
			if d > p.table.MaxRadius {
				continue
			}
			allowed := p.table.Allowed(d, seedPid)
			if err := nbrCell.Prune(toPIDSetMap(allowed)); err != nil {
				return fmt.Errorf("propagate: cell %d at depth %d from seed %d: %w", nbr, d, seed, err)
			}
		}
	}
	return nil
}

// EnforceGlobal repeatedly partitions cells into collapsed/uncollapsed and,
// for every uncollapsed cell, BFS-collects every collapsed cell within
// table.MaxRadius and retains only patterns compatible with every one of
// them at the observed radius. It iterates to a fixed point (no cell's
// domain shrinks further) and is used only by the Generator's cleanup loop,
// never during growth.
func (p *Propagator) EnforceGlobal() error {
	for {
		changed := false
		for _, id := range p.arena.AllIDs() {
			cell := p.arena.Cell(id)
			if cell.IsCollapsed() {
				continue
			}
			before := cell.DomainSize()
			observed := p.collapsedWithinRadius(id)
			allowed := p.intersectAllObserved(cell.Domain(), observed)
			if err := cell.Prune(allowed); err != nil {
				return fmt.Errorf("enforce global: cell %d: %w", id, err)
			}
			if cell.DomainSize() != before {
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

// collapsedWithinRadius BFS-walks from id up to table.MaxRadius hops and
// returns, per depth, the pid and depth of every collapsed cell reached.
func (p *Propagator) collapsedWithinRadius(id CellID) []struct {
	pid   pattern.PID
	depth int
} {
	visited := map[CellID]int{id: 0}
	queue := []propagateQueueItem{{id: id, depth: 0}}
	var out []struct {
		pid   pattern.PID
		depth int
	}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth >= p.table.MaxRadius {
			continue
		}
		for _, nbr := range p.arena.Neighbors(item.id) {
			d := item.depth + 1
			if prev, ok := visited[nbr]; ok && prev <= d {
				continue
			}
			visited[nbr] = d
			queue = append(queue, propagateQueueItem{id: nbr, depth: d})
			if pid, ok := p.arena.Cell(nbr).CollapsedPID(); ok {
				out = append(out, struct {
					pid   pattern.PID
					depth int
				}{pid: pid, depth: d})
			}
		}
	}
	return out
}

// intersectAllObserved retains, from domain, only pids compatible (per
// p.table at the observed depth) with every observed collapsed neighbor.
func (p *Propagator) intersectAllObserved(domain []pattern.PID, observed []struct {
	pid   pattern.PID
	depth int
}) map[pattern.PID]struct{} {
	out := make(map[pattern.PID]struct{}, len(domain))
	for _, d := range domain {
		out[d] = struct{}{}
	}
	for _, obs := range observed {
		allowed := p.table.Allowed(obs.depth, obs.pid)
		for candidate := range out {
			if !allowed.Contains(candidate) {
				delete(out, candidate)
			}
		}
	}
	return out
}

func toPIDSetMap(s compat.PIDSet) map[pattern.PID]struct{} {
	out := make(map[pattern.PID]struct{}, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}
