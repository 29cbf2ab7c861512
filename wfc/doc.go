// Package wfc implements the Wave-Function-Collapse–style generation engine:
// Cell domains, entropy-weighted collapse, layer-aware constraint
// propagation, RA-scored stub wiring, proportional expansion, and the
// growth/cleanup control loop that ties them together.
//
// What:
//
//   - Cell holds a domain of candidate pattern ids; it is pruned (possibly
//     many times), then collapsed exactly once.
//   - EntropyIndex selects the frontier cell with the lowest positive
//     Shannon entropy and performs frequency-weighted sampling at collapse
//     time.
//   - ConstraintPropagator BFS-walks outward from newly-collapsed seeds,
//     pruning neighbor domains per-radius-table, and reports cells forced
//     to a single pattern.
//   - StubConnector greedily wires open degree "stubs" between collapsed
//     cells by Resource-Allocation score, validating multi-hop
//     compatibility from both endpoints.
//   - Expander proportionally allocates new frontier cells around a set of
//     parents, using largest-remainder surplus distribution.
//   - Generator runs the growth loop, the propagation-with-forced-collapse
//     sub-loop, the cleanup loop, and the final phase.
//
// Errors:
//
//   - ErrInvalidInput: the training graph is empty (out-of-range
//     configuration values surface as genconfig.ErrInvalidInput).
//   - ErrContradiction: propagation reduced some domain to empty; recovered
//     by the Generator, never by panicking.
//   - ErrIllegalState: operating on an already-collapsed cell, or exporting
//     an uncollapsed one; a programming error that aborts.
//
// Concurrency: strictly single-threaded; all state lives on Generator's
// stack for the duration of one run (see package runlog for the end-of-run
// summary and github.com/google/uuid for the run id that tags it).
package wfc
