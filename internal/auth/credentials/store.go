package credentials

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Lookup when no credential matches the
// identifier. Callers must fold it into the same failure as a wrong
// secret before anything reaches a client.
var ErrNotFound = errors.New("credentials: not found")

// Store is the boundary to the external identity backend. The session
// manager only ever reads from it.
type Store interface {
	Lookup(ctx context.Context, identifier string) (*Credential, error)
}
