// Package compat builds, per hop distance, the set of pattern ids observed
// compatible with each other anywhere in the training graph.
//
// What:
//
//   - Table maps radius -> (pid -> set of pid). For k in 1..R, the set at
//     Table[k][a] holds the pattern ids judged compatible with pattern a at
//     hop distance k by the outward label-path rule below; it is derived
//     from the patterns' own structure, not from recorded co-occurrences
//     in the training graph.
//   - Compatibility at radius k is decided by outward label-paths: a
//     sequence of node labels of length k+1, starting at a pattern's center
//     and stepping strictly outward (each hop increases depth by exactly
//     one). Pattern i is compatible with pattern j at radius k iff some
//     outward-path of i equals some reversed outward-path of j (or vice
//     versa); both directions are then recorded, which is what keeps the
//     table symmetric.
//
// Why ordered label-paths rather than layer sets or raw adjacency: using
// layer membership alone would conflate "nodes at distance k" with "paths of
// length k", losing the traversal-order information compatibility is
// supposed to respect.
//
// Design decision (resolves a spec ambiguity — see DESIGN.md): rather than
// re-running a fresh radius-k node extraction with its own independent pid
// space (which would leave Table[k] unaddressable by the pids used
// everywhere else in the engine for k < R), this package computes each
// radius-k outward-path set by truncating the already-extracted
// radius-R pattern's own Depths/Adjacency/Labels to depth k. Every path a
// fresh radius-k BFS would find is already a prefix of the radius-R
// pattern's own paths, so the resulting path sets — and therefore the
// compatibility relation — are identical; the single radius-R pid space is
// preserved at every k, which ConstraintPropagator and the Generator both
// depend on.
package compat
