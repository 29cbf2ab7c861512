package compat

import (
	"strconv"
	"strings"
)

// pathKey canonicalizes a label sequence into a map key.
func pathKey(labels []int) string {
	var b strings.Builder
	for i, l := range labels {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(l))
	}
	return b.String()
}

// reverseLabels returns a new slice with labels in reverse order.
func reverseLabels(labels []int) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		out[len(labels)-1-i] = l
	}
	return out
}

// outwardPathSet DFS-walks (depths, labels, adjacency) outward from center,
// following only hops that increase depth by exactly 1, and collects the
// set of label-path keys (and their reversals) for every path that reaches
// depth exactly k. Paths that cannot reach depth k produce nothing.
func outwardPathSet(depths, labels map[int]int, adjacency map[int][]int, center, k int) (forward, reversed map[string]struct{}) {
	forward = make(map[string]struct{})
	reversed = make(map[string]struct{})

	var dfs func(node int, path []int)
	dfs = func(node int, path []int) {
		next := make([]int, len(path)+1)
		copy(next, path)
		next[len(path)] = labels[node]

		d := depths[node]
		if d == k {
			forward[pathKey(next)] = struct{}{}
			reversed[pathKey(reverseLabels(next))] = struct{}{}
			return
		}
		for _, nbr := range adjacency[node] {
			if depths[nbr] == d+1 {
				dfs(nbr, next)
			}
		}
	}
	dfs(center, nil)
	return forward, reversed
}

// intersects reports whether a and b share any key.
func intersects(a, b map[string]struct{}) bool {
	// iterate the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
