package pattern

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// colorHash combines a depth and a label into an initial WL color.
func colorHash(depth, label int) uint64 {
	return xxhash.Sum64String("d=" + strconv.Itoa(depth) + ",l=" + strconv.Itoa(label))
}

// refineColor combines a node's current color with the sorted multiset of
// its neighbors' colors to produce the next-round color.
func refineColor(color uint64, neighborColors []uint64) uint64 {
	sorted := append([]uint64(nil), neighborColors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	b.WriteString(strconv.FormatUint(color, 10))
	for _, c := range sorted {
		b.WriteByte(',')
		b.WriteString(strconv.FormatUint(c, 10))
	}
	return xxhash.Sum64String(b.String())
}

// computeCanonicalForm runs two rounds of 1-D Weisfeiler–Lehman color
// refinement over the reached node set, orders nodes by
// (final_color, depth, label), and emits the ";"-joined token string that
// is the pattern's canonical form.
func computeCanonicalForm(depths map[int]int, labels map[int]int, adjacency map[int][]int) string {
	nodes := make([]int, 0, len(depths))
	for n := range depths {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes) // deterministic base order before any color computation

	color := make(map[int]uint64, len(nodes))
	for _, n := range nodes {
		color[n] = colorHash(depths[n], labels[n])
	}
	for round := 0; round < 2; round++ {
		next := make(map[int]uint64, len(nodes))
		for _, n := range nodes {
			nbrColors := make([]uint64, 0, len(adjacency[n]))
			for _, nbr := range adjacency[n] {
				nbrColors = append(nbrColors, color[nbr])
			}
			next[n] = refineColor(color[n], nbrColors)
		}
		color = next
	}

	order := append([]int(nil), nodes...)
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if color[a] != color[b] {
			return color[a] < color[b]
		}
		if depths[a] != depths[b] {
			return depths[a] < depths[b]
		}
		return labels[a] < labels[b]
	})

	newIndex := make(map[int]int, len(order))
	for i, n := range order {
		newIndex[n] = i
	}

	tokens := make([]string, 0, len(order))
	for i, n := range order {
		nbrIdx := make([]int, 0, len(adjacency[n]))
		for _, nbr := range adjacency[n] {
			nbrIdx = append(nbrIdx, newIndex[nbr])
		}
		sort.Ints(nbrIdx)
		tokens = append(tokens, fmt.Sprintf("(%d:c=%d,d=%d,l=%d→%v)", i, color[n], depths[n], labels[n], nbrIdx))
	}
	return strings.Join(tokens, ";")
}
