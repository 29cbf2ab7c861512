package wfc

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphwfc/pattern"
)

// shannonEntropyBits computes H = -Σ p·log2(p) over the frequency-weighted
// domain, returning 0 when |domain| <= 1 or the total weight is 0. Shannon
// entropy itself is computed in nats by gonum.org/v1/gonum/stat.Entropy and
// converted to bits.
func shannonEntropyBits(domain []pattern.PID, catalog *Catalog) float64 {
	if len(domain) <= 1 {
		return 0
	}
	weights := make([]float64, len(domain))
	total := 0.0
	for i, p := range domain {
		w := float64(catalog.Frequency(p))
		weights[i] = w
		total += w
	}
	if total == 0 {
		return 0
	}
	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / total
	}
	return stat.Entropy(probs) / math.Ln2
}

// EntropyIndex tracks frontier cells and selects the next one to collapse:
// the cell with the smallest positive entropy, ties broken by insertion
// order. Entropy is recomputed on demand (the spec's Design Notes permit
// this; no stale cache is kept).
type EntropyIndex struct {
	catalog *Catalog
	order   []CellID
	active  map[CellID]bool
}

// NewEntropyIndex constructs an EntropyIndex over catalog's frequencies.
func NewEntropyIndex(catalog *Catalog) *EntropyIndex {
	return &EntropyIndex{
		catalog: catalog,
		active:  make(map[CellID]bool),
	}
}

// Add registers id as a frontier cell, in insertion order.
func (e *EntropyIndex) Add(id CellID) {
	if e.active[id] {
		return
	}
	e.active[id] = true
	e.order = append(e.order, id)
}

// Remove retires id from the frontier (e.g. once it collapses).
func (e *EntropyIndex) Remove(id CellID) {
	delete(e.active, id)
}

// PickLowest returns the active frontier cell with the smallest positive
// entropy, breaking ties by insertion order. It returns (0, false) if no
// active cell has positive entropy.
func (e *EntropyIndex) PickLowest(cells map[CellID]*Cell) (CellID, bool) {
	best := CellID(0)
	bestH := math.Inf(1)
	found := false
	for _, id := range e.order {
		if !e.active[id] {
			continue
		}
		c := cells[id]
		if c == nil || c.IsCollapsed() {
			continue
		}
		h := shannonEntropyBits(c.Domain(), e.catalog)
		if h <= 0 {
			continue
		}
		if h < bestH {
			bestH = h
			best = id
			found = true
		}
	}
	return best, found
}

// SampleWeighted draws a pattern id from domain proportional to training
// frequency, using rng as the single source of randomness. Domain is
// enumerated in ascending pid order for determinism under a fixed seed.
//
// Implementation note: the spec describes drawing uniformly over [0, W) and
// returning the first pattern whose cumulative weight is >= the draw. For a
// continuous draw that's unambiguous; for the discrete integer draw used
// here (rng.Intn(W)), the proportionality-preserving equivalent is "first
// cumulative weight strictly greater than the draw" (">=" would give pid 0
// one extra unit of the range at every other pattern's expense). That
// strict form is what's implemented below.
func SampleWeighted(rng *rand.Rand, domain []pattern.PID, catalog *Catalog) pattern.PID {
	sorted := append([]pattern.PID(nil), domain...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	weights := make([]int, len(sorted))
	total := 0
	for i, p := range sorted {
		w := catalog.Frequency(p)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return sorted[0]
	}
	draw := rng.Intn(total)
	cum := 0
	for i, w := range weights {
		cum += w
		if cum > draw {
			return sorted[i]
		}
	}
	return sorted[len(sorted)-1]
}
