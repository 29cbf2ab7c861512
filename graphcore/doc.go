// Package graphcore defines the Graph and Node types shared by the rest of
// graphwfc: an undirected, integer-id, integer-label graph with an
// adjacency-list representation.
//
// What:
//
//   - Graph holds Nodes keyed by integer id, each with an integer Label.
//   - AddEdge is idempotent and rejects self-loops; duplicate edges are
//     deduplicated by unordered-pair equality.
//   - Node iteration order is insertion order (first GetOrCreateNode wins),
//     which downstream packages rely on for stable extraction and sampling.
//
// Why:
//
//   - Pattern extraction and compatibility-table construction need a simple,
//     mutation-safe graph to BFS/DFS over; there is no need for directed
//     edges, weights, or multigraph semantics here.
//
// Errors: none — Graph's own API cannot fail; callers validate elsewhere.
package graphcore
