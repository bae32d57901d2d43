package ports

import "context"

// KVStore is the persistence boundary the cart reads once and writes after
// every mutation. Implementations are scoped to one session.
type KVStore interface {
	// Get returns the stored value and true, or "" and false when the key is
	// absent. An error means the store could not be read.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the value for key. When Set returns nil the value is durable
	// for the lifetime the store offers.
	Set(ctx context.Context, key, value string) error
}
