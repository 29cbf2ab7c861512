package iotext

import "errors"

// ErrIOFailure wraps any failure reading or writing the edges/labels text
// format, including a malformed line and the underlying filesystem error.
var ErrIOFailure = errors.New("iotext: I/O failure")
