package wfc

import (
	"sort"

	"github.com/katalvlaran/graphwfc/compat"
	"github.com/katalvlaran/graphwfc/pattern"
)

/*
StubConnector — Resource-Allocation-scored greedy stub wiring

Description:

	Collapsed cells carry a target degree recorded at collapse time. connect
	wires open "stubs" (target_degree - current_degree) between compatible
	cell pairs, scoring each candidate pair by Resource Allocation over their
	radius-1 pattern-space neighborhoods and accepting greedily by descending
	score, exactly the sort-then-greedy-accept shape Kruskal's MST uses over
	edge weight.

Steps:

  1. Compute positive stubs per collapsed cell.
  2. Generate candidate pairs (u, v), u < v, neither already adjacent, both
     with positive stubs, validated compatible both directly and along every
     multi-hop path from either endpoint.
  3. Score surviving pairs by RA over table[1] neighborhoods.
  4. Sort descending by RA, tie-break by generation (insertion) order.
  5. Walk the sorted list once, accepting a pair iff both stubs are still
     positive and the pair is not already adjacent.

Complexity: O(C^2) pair generation (C = collapsed cell count) dominates;
acceptable since C is bounded by the generator's size parameters.
*/
type StubConnector struct {
	arena *Arena
	table *compat.Table
}

// NewStubConnector returns a StubConnector over arena and table.
func NewStubConnector(arena *Arena, table *compat.Table) *StubConnector {
	return &StubConnector{arena: arena, table: table}
}

type stubPair struct {
	u, v  CellID
	ra    float64
	order int
}

// Connect wires as many open stubs as the compatibility table and current
// adjacency allow, returning the number of edges added.
func (s *StubConnector) Connect(settled []CellID) int {
	stubs := s.openStubs(settled)
	if len(stubs) == 0 {
		return 0
	}

	var pairs []stubPair
	order := 0
	for i := 0; i < len(settled); i++ {
		u := settled[i]
		if stubs[u] <= 0 {
			continue
		}
		for j := i + 1; j < len(settled); j++ {
			v := settled[j]
			if stubs[v] <= 0 {
				continue
			}
			if s.arena.adjacent(u, v) {
				continue
			}
			if !s.compatible(u, v) {
				continue
			}
			pairs = append(pairs, stubPair{u: u, v: v, ra: s.resourceAllocation(u, v), order: order})
			order++
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].ra != pairs[j].ra {
			return pairs[i].ra > pairs[j].ra
		}
		return pairs[i].order < pairs[j].order
	})

	added := 0
	for _, p := range pairs {
		if stubs[p.u] <= 0 || stubs[p.v] <= 0 {
			continue
		}
		if s.arena.adjacent(p.u, p.v) {
			continue
		}
		s.arena.Link(p.u, p.v)
		stubs[p.u]--
		stubs[p.v]--
		added++
	}
	return added
}

// openStubs returns, for every collapsed cell in settled with a positive
// stub count, max(0, target_degree - current_degree).
func (s *StubConnector) openStubs(settled []CellID) map[CellID]int {
	out := make(map[CellID]int)
	for _, id := range settled {
		cell := s.arena.Cell(id)
		target, ok := cell.TargetDegree()
		if !ok {
			continue
		}
		open := target - s.arena.Degree(id)
		if open > 0 {
			out[id] = open
		}
	}
	return out
}

// compatible validates direct radius-1 compatibility plus multi-hop path
// validation from both endpoints, per the spec's StubConnector candidate
// generation rule.
func (s *StubConnector) compatible(u, v CellID) bool {
	pu, ok := s.arena.Cell(u).CollapsedPID()
	if !ok {
		return false
	}
	pv, ok := s.arena.Cell(v).CollapsedPID()
	if !ok {
		return false
	}
	if !s.table.Allowed(1, pu).Contains(pv) {
		return false
	}
	if !s.validatePathFrom(u, v, pv) {
		return false
	}
	if !s.validatePathFrom(v, u, pu) {
		return false
	}
	return true
}

// validatePathFrom BFS-walks the current output adjacency from origin up to
// depth table.MaxRadius-1, requiring every collapsed cell w encountered at
// depth d (1 <= d <= MaxRadius-1) to be compatible with targetPid at radius
// d+1.
func (s *StubConnector) validatePathFrom(origin, excluded CellID, targetPid pattern.PID) bool {
	maxDepth := s.table.MaxRadius - 1
	if maxDepth < 1 {
		return true
	}
	visited := map[CellID]bool{origin: true}
	type item struct {
		id    CellID
		depth int
	}
	queue := []item{{id: origin, depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= maxDepth {
			continue
		}
		for _, nbr := range s.arena.Neighbors(cur.id) {
			if visited[nbr] || nbr == excluded {
				continue
			}
			visited[nbr] = true
			d := cur.depth + 1
			queue = append(queue, item{id: nbr, depth: d})
			if wPid, ok := s.arena.Cell(nbr).CollapsedPID(); ok {
				if !s.table.Allowed(d+1, wPid).Contains(targetPid) {
					return false
				}
			}
		}
	}
	return true
}

// resourceAllocation computes RA(u,v) = sum over m in N1(pid(u)) ∩ N1(pid(v))
// of 1/|N1(m)|, where N1(x) = table.Allowed(1, x).
func (s *StubConnector) resourceAllocation(u, v CellID) float64 {
	pu, _ := s.arena.Cell(u).CollapsedPID()
	pv, _ := s.arena.Cell(v).CollapsedPID()
	nu := s.table.Allowed(1, pu)
	nv := s.table.Allowed(1, pv)

	var ra float64
	for m := range nu {
		if !nv.Contains(m) {
			continue
		}
		nm := s.table.Allowed(1, m)
		if len(nm) == 0 {
			continue
		}
		ra += 1.0 / float64(len(nm))
	}
	return ra
}
