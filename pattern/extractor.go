package pattern

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/graphwfc/graphcore"
)

// buildEgoNetwork BFS-explores g from center up to radius hops and returns
// the restricted depths/labels/adjacency/layers for the reached set.
// Neighbor lists are filtered to the reached set, preserving g.Neighbors'
// input order.
func buildEgoNetwork(g *graphcore.Graph, center, radius int) (depths, labels map[int]int, adjacency map[int][]int, layers [][]int) {
	depths = map[int]int{center: 0}
	queue := []int{center}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := depths[cur]
		if d == radius {
			continue
		}
		for _, nbr := range g.Neighbors(cur) {
			if _, seen := depths[nbr]; !seen {
				depths[nbr] = d + 1
				queue = append(queue, nbr)
			}
		}
	}

	labels = make(map[int]int, len(depths))
	adjacency = make(map[int][]int, len(depths))
	for n := range depths {
		lbl, _ := g.Label(n)
		labels[n] = lbl
		var adj []int
		for _, nbr := range g.Neighbors(n) {
			if _, reached := depths[nbr]; reached {
				adj = append(adj, nbr)
			}
		}
		adjacency[n] = adj
	}

	layers = make([][]int, radius)
	for n, d := range depths {
		if d >= 1 {
			layers[d-1] = append(layers[d-1], n)
		}
	}
	for k := range layers {
		sort.Ints(layers[k])
	}
	return depths, labels, adjacency, layers
}

// Extract builds one pattern per node of g (BFS ego-network up to radius),
// deduplicates patterns by canonical form preserving first-seen order, and
// aggregates frequency. It returns ErrInvalidInput if radius < 1. An empty
// graph yields empty output.
func Extract(g *graphcore.Graph, radius int) ([]*Pattern, map[PID]int, error) {
	if radius < 1 {
		return nil, nil, ErrInvalidInput
	}

	buckets := make(map[uint64][]*Pattern)
	unique := make([]*Pattern, 0)

	for _, node := range g.AllNodes() {
		depths, labels, adjacency, layers := buildEgoNetwork(g, node.ID, radius)
		canon := computeCanonicalForm(depths, labels, adjacency)
		hash := xxhash.Sum64String(canon)

		if existing := findByCanonicalForm(buckets[hash], canon); existing != nil {
			existing.Frequency++
			continue
		}

		p := &Pattern{
			CenterID:      node.ID,
			CenterLabel:   node.Label,
			Radius:        radius,
			Labels:        labels,
			Adjacency:     adjacency,
			Layers:        layers,
			Depths:        depths,
			Frequency:     1,
			CenterDegree:  g.Degree(node.ID),
			CanonicalForm: canon,
			canonicalHash: hash,
		}
		buckets[hash] = append(buckets[hash], p)
		unique = append(unique, p)
	}

	freq := make(map[PID]int, len(unique))
	for i, p := range unique {
		freq[PID(i)] = p.Frequency
	}
	return unique, freq, nil
}

// findByCanonicalForm resolves a hash-bucket collision by exact string
// comparison, keeping canonical-form equality authoritative.
func findByCanonicalForm(bucket []*Pattern, canon string) *Pattern {
	for _, p := range bucket {
		if p.CanonicalForm == canon {
			return p
		}
	}
	return nil
}
