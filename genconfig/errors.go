package genconfig

import "errors"

// ErrInvalidInput indicates a configuration value is outside its allowed
// range. Validate returns it wrapped with field-level context via %w.
var ErrInvalidInput = errors.New("genconfig: invalid input")
