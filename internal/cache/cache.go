package cache

import (
	"context"
	"time"
)

// Cache is a read-through cache for JSON-serializable values. A miss is
// reported via the ok flag, not an error.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
