package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized upstream answers. A zero ttl keeps the
// entry until evicted.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
