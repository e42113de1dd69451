// Package session holds the client's authentication state: the access token
// and the current user identity, cached in memory and persisted to a local
// key-value store so a session survives restarts.
package session

import "context"

// Durable storage keys. Both are written and cleared together; one without
// the other is a corrupt session and is treated as absent.
const (
	keyToken = "auth_token"
	keyUser  = "auth_user"
)

// Repository is the persistent key-value store backing the session.
// Multi-key writes and deletes are atomic: either every key lands or none
// does.
type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetMany upserts all items atomically.
	SetMany(ctx context.Context, items map[string][]byte) error

	// DeleteMany removes all keys atomically. Missing keys are not an error.
	DeleteMany(ctx context.Context, keys ...string) error
}
