package wfc

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphwfc/compat"
	"github.com/katalvlaran/graphwfc/genconfig"
	"github.com/katalvlaran/graphwfc/graphcore"
	"github.com/katalvlaran/graphwfc/pattern"
	"github.com/katalvlaran/graphwfc/runlog"
)

/*
Generator — orchestrates growth, cleanup, and final collapse

Description:

	Generator owns the single seeded RNG, the cell arena, and every
	collaborator (EntropyIndex, Expander, Propagator, StubConnector) needed
	to grow a fresh output graph from one open cell up to the configured
	target size, then close remaining stubs under a decaying expansion
	budget, then force-collapse whatever is left.

Steps (Run):

  1. Growth loop: while the frontier is non-empty and settled/target_size
     is below lower_cap, pick the lowest-entropy frontier cell, collapse it,
     expand its parent stub budget, propagate (cascading through any forced
     collapses), connect, and propagate again from the full settled set.
  2. Cleanup loop: once growth stops, tighten domains once via
     Propagator.EnforceGlobal, then iterate attaching open cells to
     remaining stubs, connecting, and collapsing under a linearly decaying
     expansion allowance until no more progress is possible.
  3. Final phase: collapse remaining frontier cells with zero expansion
     budget, connecting after each, until the frontier is empty or the
     settled count reaches hard_upper (frontier cells left at that point
     stay uncollapsed), then attempt one last connect over the settled set.

A Contradiction at any point is logged and ends the current phase; the
engine never backtracks, and unresolved stubs at termination are accepted.
*/
type Generator struct {
	cfg     genconfig.Config
	rng     *rand.Rand
	arena   *Arena
	catalog *Catalog

	frontier []CellID
	settled  []CellID

	entropy    *EntropyIndex
	expander   *Expander
	propagator *Propagator
	connector  *StubConnector

	run *runlog.Run

	targetSize   int
	hardUpper    int
	expansionCap int
}

// NewGenerator builds a Generator from trainingGraph and cfg, extracting
// patterns at cfg.Radius, building the radius-1..cfg.Radius compatibility
// table, deriving expansion_cap from the cfg.ExpansionPercentile-th
// percentile of training-node degree times cfg.ExpansionSlack, and seeding
// the frontier with one open cell. Logging is written to logWriter, tagged
// with a fresh run id.
func NewGenerator(trainingGraph *graphcore.Graph, cfg *genconfig.Config, logWriter io.Writer) (*Generator, error) {
	if trainingGraph == nil || trainingGraph.NodeCount() == 0 {
		return nil, fmt.Errorf("wfc: generator: training graph has no nodes: %w", ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	patterns, freq, err := pattern.Extract(trainingGraph, cfg.Radius)
	if err != nil {
		return nil, fmt.Errorf("wfc: generator: extracting patterns: %w", err)
	}
	table, err := compat.Build(patterns, cfg.Radius)
	if err != nil {
		return nil, fmt.Errorf("wfc: generator: building compatibility table: %w", err)
	}
	catalog := &Catalog{Patterns: patterns, Frequencies: freq}

	nodes := trainingGraph.AllNodes()
	degrees := make([]float64, len(nodes))
	for i, n := range nodes {
		degrees[i] = float64(trainingGraph.Degree(n.ID))
	}
	sort.Float64s(degrees)
	expansionCap := int(math.Ceil(stat.Quantile(cfg.ExpansionPercentile, stat.Empirical, degrees, nil) * cfg.ExpansionSlack))
	if expansionCap < 1 {
		expansionCap = 1
	}

	targetSize := cfg.SizeFactor * len(nodes)
	hardUpper := int(math.Ceil(float64(targetSize) * cfg.UpperCap))

	arena := NewArena()
	entropy := NewEntropyIndex(catalog)
	seed := arena.NewCell(catalog.AllPIDs())
	entropy.Add(seed)

	return &Generator{
		cfg:          *cfg,
		rng:          rand.New(rand.NewSource(cfg.RNGSeed)),
		arena:        arena,
		catalog:      catalog,
		frontier:     []CellID{seed},
		entropy:      entropy,
		expander:     NewExpander(arena),
		propagator:   NewPropagator(arena, table),
		connector:    NewStubConnector(arena, table),
		run:          runlog.New(logWriter),
		targetSize:   targetSize,
		hardUpper:    hardUpper,
		expansionCap: expansionCap,
	}, nil
}

// Run executes growth, cleanup, and the final collapse phase, returning the
// settled cells in collapse order and a snapshot of the output adjacency.
func (g *Generator) Run() ([]CellID, map[CellID][]CellID, error) {
	g.runGrowth()
	g.runCleanup()
	g.runFinal()

	adjacency := make(map[CellID][]CellID, len(g.settled))
	for _, id := range g.settled {
		adjacency[id] = append([]CellID(nil), g.arena.Neighbors(id)...)
	}

	g.run.Summary(g.sumOpenStubs(), len(g.frontier) == 0)

	return append([]CellID(nil), g.settled...), adjacency, nil
}

// Arena exposes the underlying cell arena, for callers (e.g. iotext.Exporter)
// that need direct access to collapsed cells and adjacency.
func (g *Generator) Arena() *Arena {
	return g.arena
}

func (g *Generator) runGrowth() {
	for len(g.frontier) > 0 && float64(len(g.settled))/float64(g.targetSize) < g.cfg.LowerCap {
		selectID, ok := g.entropy.PickLowest(g.arena.cells)
		if !ok {
			break
		}
		if err := g.collapse(selectID); err != nil {
			g.run.Contradiction("growth", err)
			break
		}

		if remaining := g.expansionCap - len(g.frontier); remaining > 0 {
			g.addFrontier(g.expander.Expand([]CellID{selectID}, remaining, g.catalog.AllPIDs()))
		}

		if err := g.propagateWaves([]CellID{selectID}, g.expansionCap); err != nil {
			g.run.Contradiction("growth", err)
			break
		}

		g.connector.Connect(g.settled)

		if err := g.propagateWaves(g.settled, g.expansionCap); err != nil {
			g.run.Contradiction("growth", err)
			break
		}
	}
}

func (g *Generator) runCleanup() {
	if err := g.propagator.EnforceGlobal(); err != nil {
		g.run.Contradiction("cleanup", err)
	}

	for {
		openStubs := g.sumOpenStubs()
		if openStubs == 0 && len(g.frontier) == 0 {
			break
		}
		if len(g.settled) >= g.hardUpper {
			break
		}

		progress := float64(len(g.settled)) / float64(g.targetSize)
		allowance := int(math.Ceil(decay(progress, g.cfg.UpperCap) * float64(g.expansionCap)))
		if maxAllowance := openStubs - len(g.frontier); allowance > maxAllowance {
			allowance = maxAllowance
		}
		if allowance < 0 {
			allowance = 0
		}

		if len(g.frontier) == 0 && openStubs > 0 && allowance > 0 {
			g.attachOpenCellsToStubs(allowance)
			continue
		}

		if added := g.connector.Connect(g.settled); added > 0 {
			if err := g.propagateWaves(g.settled, g.expansionCap); err != nil {
				g.run.Contradiction("cleanup", err)
				break
			}
			continue
		}

		if len(g.frontier) > 0 {
			if selectID, ok := g.pickNext(); ok {
				if err := g.collapse(selectID); err != nil {
					g.run.Contradiction("cleanup", err)
					break
				}
				g.connector.Connect(g.settled)
				if allowance > 0 {
					g.addFrontier(g.expander.Expand([]CellID{selectID}, allowance, g.catalog.AllPIDs()))
				}
				if err := g.propagateWaves([]CellID{selectID}, g.expansionCap); err != nil {
					g.run.Contradiction("cleanup", err)
					break
				}
				continue
			}
		}

		break
	}
}

func (g *Generator) runFinal() {
	for len(g.frontier) > 0 && len(g.settled) < g.hardUpper {
		selectID, ok := g.pickNext()
		if !ok {
			break
		}
		if err := g.collapse(selectID); err != nil {
			g.run.Contradiction("final", err)
			break
		}
		g.connector.Connect(g.settled)
		// Zero expansion budget: no forced-collapse cascade may grow the
		// frontier during the final phase.
		if err := g.propagateWaves([]CellID{selectID}, 0); err != nil {
			g.run.Contradiction("final", err)
			break
		}
	}
	g.connector.Connect(g.settled)
}

// propagateWaves runs the propagation-with-forced-collapse sub-loop: each
// wave of forced cells is immediately collapsed, then (unless expansionCap
// is 0, the Final phase's zero-expansion-budget case) expanded by
// ceil(sqrt(|forced|)) * expansionCap - |frontier| (clamped >= 0), and fed
// back in as the next wave's seeds. The cascade stops once the settled count
// reaches hard_upper; forced cells not yet collapsed then stay in the frontier.
func (g *Generator) propagateWaves(seeds []CellID, expansionCap int) error {
	wave := seeds
	for len(wave) > 0 {
		forced, err := g.propagator.Propagate(wave)
		if err != nil {
			return err
		}
		if len(forced) == 0 {
			return nil
		}
		for _, id := range forced {
			if len(g.settled) >= g.hardUpper {
				return nil
			}
			if err := g.collapse(id); err != nil {
				return err
			}
		}
		if expansionCap > 0 {
			remaining := int(math.Ceil(math.Sqrt(float64(len(forced)))))*expansionCap - len(g.frontier)
			if remaining > 0 {
				g.addFrontier(g.expander.Expand(forced, remaining, g.catalog.AllPIDs()))
			}
		}
		wave = forced
	}
	return nil
}

// collapse weighted-samples a pid from id's current domain, fixes it, and
// moves id from the frontier to settled. A cell whose domain was pruned to
// empty is left in place and reported as ErrContradiction.
func (g *Generator) collapse(id CellID) error {
	cell := g.arena.Cell(id)
	domain := cell.Domain()
	if len(domain) == 0 {
		return fmt.Errorf("wfc: collapse: cell %d has an empty domain: %w", id, ErrContradiction)
	}
	pid := SampleWeighted(g.rng, domain, g.catalog)
	if err := cell.CollapseTo(pid, g.catalog); err != nil {
		return err
	}
	g.entropy.Remove(id)
	g.removeFrontier(id)
	g.settled = append(g.settled, id)
	g.run.Infof("collapsed cell %d to pattern %d", id, pid)
	return nil
}

// attachOpenCellsToStubs creates one new open cell per remaining stub on a
// settled cell, in settled iteration order, until budget is exhausted.
func (g *Generator) attachOpenCellsToStubs(budget int) {
	stubs := g.connector.openStubs(g.settled)
	for _, id := range g.settled {
		if budget <= 0 {
			return
		}
		for stubs[id] > 0 && budget > 0 {
			child := g.arena.NewCell(g.catalog.AllPIDs())
			g.arena.Link(id, child)
			g.addFrontier([]CellID{child})
			stubs[id]--
			budget--
		}
	}
}

// pickNext returns the lowest-entropy frontier cell, or (for cells whose
// domain has already collapsed to a zero-entropy singleton without being
// formally collapsed) the earliest-inserted frontier cell.
func (g *Generator) pickNext() (CellID, bool) {
	if id, ok := g.entropy.PickLowest(g.arena.cells); ok {
		return id, true
	}
	if len(g.frontier) == 0 {
		return 0, false
	}
	return g.frontier[0], true
}

func (g *Generator) addFrontier(ids []CellID) {
	for _, id := range ids {
		g.frontier = append(g.frontier, id)
		g.entropy.Add(id)
	}
}

func (g *Generator) removeFrontier(id CellID) {
	for i, f := range g.frontier {
		if f == id {
			g.frontier = append(g.frontier[:i], g.frontier[i+1:]...)
			return
		}
	}
}

func (g *Generator) sumOpenStubs() int {
	sum := 0
	for _, v := range g.connector.openStubs(g.settled) {
		sum += v
	}
	return sum
}

// decay is 1 up to progress==1, 0 from upperCap onward, and linear between.
func decay(progress, upperCap float64) float64 {
	if progress <= 1.0 {
		return 1
	}
	if progress >= upperCap {
		return 0
	}
	return (upperCap - progress) / (upperCap - 1)
}
