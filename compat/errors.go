package compat

import "errors"

// ErrInvalidInput is returned when Build is called with maxRadius < 1.
var ErrInvalidInput = errors.New("compat: maxRadius must be >= 1")
