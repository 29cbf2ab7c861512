// Package pattern builds ego-network patterns from a graphcore.Graph and
// deduplicates them by a Weisfeiler–Lehman canonical form.
//
// What:
//
//   - Pattern is an immutable value capturing one node's ego-network up to
//     a fixed radius: labels, adjacency (restricted to the reached set),
//     per-hop layers, exact depths, and the center's degree in the original
//     (untruncated) graph.
//   - CanonicalForm is computed with two rounds of 1-D WL color refinement
//     and a (color, depth, label) total order; two patterns are equal iff
//     their canonical forms are byte-equal.
//   - Extract builds one pattern per node, deduplicates by
//     canonical form preserving first-seen order, and aggregates frequency.
//
// Why:
//
//   - The compatibility tables and the WFC generator both operate purely in
//     terms of these canonical, deduplicated patterns and their integer
//     ids (pids); this package is where "two nodes look the same" is
//     decided.
//
// Complexity:
//
//   - Extract: O(N·(V_R + E_R) ) where V_R/E_R bound the radius-R ego-network
//     size per node; WL refinement adds O(V_R log V_R) per node for sorting.
//
// Errors:
//
//   - ErrInvalidInput: radius < 1.
package pattern
