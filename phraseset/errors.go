package phraseset

import "errors"

// ErrNotReloadable indicates Reload or Watch was called on a set built from
// a reader rather than a file.
var ErrNotReloadable = errors.New("phraseset: set has no backing file")
