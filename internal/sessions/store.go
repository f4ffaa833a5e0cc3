package sessions

import (
	"context"
	"errors"
	"time"
)

// Store maps opaque bearer tokens to user ids. Authentication itself lives
// outside this service; the store is the narrow surface the API needs to
// resolve an already-issued token.
type Store interface {
	Issue(ctx context.Context, userID string, ttl time.Duration) (string, error)

	Lookup(ctx context.Context, token string) (string, error)

	Revoke(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
