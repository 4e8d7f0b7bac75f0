package mokp

import (
	"errors"
)

// Boundary error values. Parse failures wrap ErrMalformedInput with the
// offending token context; dimension failures wrap ErrInvalidDimensions.
var (
	ErrNotLoaded         = errors.New("problem not loaded")
	ErrClosed            = errors.New("optimizer closed")
	ErrInvalidDimensions = errors.New("invalid problem dimensions")
	ErrMalformedInput    = errors.New("malformed input")
	ErrIndexOutOfRange   = errors.New("index out of range")
)
