package interfaces

import "errors"

// ErrNotFound is returned by storage implementations when a requested row
// does not exist. Handlers map it to a 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidReference is returned by services when a record points at a
// parent that does not exist (post without its user, comment without its
// post). Handlers map it to a 400 response instead of surfacing the
// database's foreign key violation.
var ErrInvalidReference = errors.New("invalid reference")
