// Package runlog tags a single Generator run with a UUID and logs through
// it, closing with the one summary line every run must print.
package runlog
