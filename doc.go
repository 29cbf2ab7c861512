// Package graphwfc synthesizes new labeled graphs from a training graph by
// a Wave-Function-Collapse-style process: local neighborhood patterns are
// extracted from the training graph, a compatibility table is built between
// them, and a generator grows, prunes, and wires a fresh graph one cell at a
// time until it reaches the configured size.
//
// Subpackages:
//
//	graphcore/ — the undirected labeled Graph type
//	pattern/   — ego-network extraction and WL canonicalization
//	compat/    — multi-radius pattern compatibility tables
//	wfc/       — Cell, EntropyIndex, ConstraintPropagator, StubConnector,
//	             Expander, Generator
//	genconfig/ — generation-run configuration
//	iotext/    — the edges/labels text file format
//	runlog/    — per-run structured logging
package graphwfc
