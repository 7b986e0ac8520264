package collection

import "errors"

// Sentinel errors for resolution calls. Not-found conditions are not errors:
// they are reported as empty result lists or boolean false.
var (
	// ErrInvalidPattern indicates a regex resolution was called with a
	// malformed expression. The store is left unchanged.
	ErrInvalidPattern = errors.New("collection: invalid resolution pattern")

	// ErrUnknownMode indicates Resolve was called with an unrecognized mode.
	ErrUnknownMode = errors.New("collection: unknown resolution mode")
)
