package wfc

import (
	"math"
	"sort"

	"github.com/katalvlaran/graphwfc/pattern"
)

/*
Expander — proportional frontier growth

Description:

	expand allocates budget new open cells across a set of just-collapsed
	parents, proportional to each parent's recorded center degree, then
	distributes any unused slots (from floor rounding) to the parents with
	the largest fractional remainder, one at a time, each capped at
	ceil(center_degree/2).

Steps:

  1. demand = sum of parents' center degrees; no-op if demand == 0 or
     budget <= 0.
  2. share = budget * center_degree(parent) / demand;
     base = max(1, floor(share)); cap = ceil(center_degree(parent)/2);
     alloc = min(base, cap); remainder = share - base.
  3. Distribute budget - sum(alloc) extra slots to parents in descending
     remainder order (ties broken by parent-list iteration order), one at a
     time, never exceeding a parent's cap.
  4. For each parent, create alloc new open cells (domain = allPIDs), link
     each bidirectionally to the parent, and return their ids appended to
     the frontier.
*/
type Expander struct {
	arena *Arena
}

// NewExpander returns an Expander over arena.
func NewExpander(arena *Arena) *Expander {
	return &Expander{arena: arena}
}

type allocation struct {
	parent    CellID
	base      int
	maxAlloc  int
	remainder float64
}

// Expand allocates new open cells across parents (proportional to each
// parent's recorded center degree) and returns their ids in
// parent-iteration, then creation, order. Every parent with a positive
// center degree receives at least one cell, so the total exceeds budget
// when such parents outnumber it.
func (e *Expander) Expand(parents []CellID, budget int, allPIDs []pattern.PID) []CellID {
	if budget <= 0 || len(parents) == 0 {
		return nil
	}

	demand := 0
	degrees := make(map[CellID]int, len(parents))
	for _, p := range parents {
		d, ok := e.arena.Cell(p).TargetDegree()
		if !ok {
			d = 0
		}
		degrees[p] = d
		demand += d
	}
	if demand == 0 {
		return nil
	}

	allocs := make([]allocation, len(parents))
	baseSum := 0
	for i, p := range parents {
		deg := degrees[p]
		share := float64(budget) * float64(deg) / float64(demand)
		uncappedBase := int(math.Floor(share))
		if uncappedBase < 1 {
			uncappedBase = 1
		}
		maxAlloc := int(math.Ceil(float64(deg) / 2))
		// remainder follows the spec's base = max(1, floor(share)) literally,
		// even though the allocation actually used below is capped.
		remainder := share - float64(uncappedBase)
		base := uncappedBase
		if base > maxAlloc {
			base = maxAlloc
		}
		allocs[i] = allocation{parent: p, base: base, maxAlloc: maxAlloc, remainder: remainder}
		baseSum += base
	}

	surplus := budget - baseSum
	if surplus > 0 {
		order := make([]int, len(allocs))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return allocs[order[a]].remainder > allocs[order[b]].remainder
		})
		for surplus > 0 {
			progressed := false
			for _, idx := range order {
				if surplus <= 0 {
					break
				}
				if allocs[idx].base >= allocs[idx].maxAlloc {
					continue
				}
				allocs[idx].base++
				surplus--
				progressed = true
			}
			if !progressed {
				break
			}
		}
	}

	var created []CellID
	for _, a := range allocs {
		for i := 0; i < a.base; i++ {
			child := e.arena.NewCell(allPIDs)
			e.arena.Link(a.parent, child)
			created = append(created, child)
		}
	}
	return created
}
