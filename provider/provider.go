// Package provider defines the storage abstraction used by govconf.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key. Keys are full
// governance paths ("/dubbo/app.condition-router"); providers treat them as
// opaque strings.
package provider

import "context"

// Provider is a minimal byte store without expiry.
// Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Del removes a key. removed reports whether the key existed.
	Del(ctx context.Context, key string) (removed bool, err error)

	// Close releases resources.
	Close(ctx context.Context) error
}
