// errors.go — sentinel errors for the wfc package.
//
// Error policy (explicit and strict), following lvlath/builder's own
// convention:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with %w.
package wfc

import "errors"

// ErrInvalidInput indicates the generator was given an empty training graph.
// Out-of-range configuration values (radius < 1, percentile outside [0,1])
// are reported by genconfig.Validate as genconfig.ErrInvalidInput.
var ErrInvalidInput = errors.New("wfc: invalid input")

// ErrContradiction indicates that propagation reduced some cell's domain to
// empty. It is expected and recoverable: the Generator catches it, logs,
// and falls through to the next phase. It is never a panic.
var ErrContradiction = errors.New("wfc: contradiction")

// ErrIllegalState indicates an operation on an already-collapsed cell, or an
// attempt to export a cell that was never collapsed. This is a programming
// error and is not recovered.
var ErrIllegalState = errors.New("wfc: illegal state")
