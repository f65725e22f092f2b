package kvstore

import "errors"

// ErrNotFound is returned by Get when the key is absent. Callers generally
// downgrade it to an empty default rather than surfacing it.
var ErrNotFound = errors.New("kvstore: key not found")
