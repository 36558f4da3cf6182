package interfaces

import "errors"

// ErrNotFound is returned (wrapped) by repository implementations when a
// requested record does not exist. Callers detect it with errors.Is.
var ErrNotFound = errors.New("record not found")
