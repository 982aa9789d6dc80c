package core

import "errors"

var (
	// ErrMalformedInput marks an unrecognized character or direction token.
	ErrMalformedInput = errors.New("malformed input")
	// ErrDimensionMismatch marks square-lattice rows of unequal length.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNoConvergence is returned when a bounded run hits its generation limit.
	ErrNoConvergence = errors.New("no fixed point within generation limit")
)
