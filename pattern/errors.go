package pattern

import "errors"

// ErrInvalidInput is returned when Extract is called with radius < 1.
//
// Usage: if errors.Is(err, ErrInvalidInput) { /* reject configuration */ }.
var ErrInvalidInput = errors.New("pattern: radius must be >= 1")
