package storage

import (
	"context"

	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that scoped implements ports.KVStore.
var _ ports.KVStore = (*scoped)(nil)

type scoped struct {
	inner  ports.KVStore
	prefix string
}

// Scoped returns a view of inner whose keys are prefixed with
// "<prefix><sessionID>:", so many sessions can share one backing store.
func Scoped(inner ports.KVStore, prefix, sessionID string) ports.KVStore {
	return &scoped{inner: inner, prefix: prefix + sessionID + ":"}
}

func (s *scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}
