package cache

import (
	"context"
	"time"
)

// Cache holds last-good listing snapshots so a fresh process can render
// before its first fetch resolves. It is best-effort: callers log cache
// failures and move on.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductListKeyPrefix = "products"
	CategoryKeyPrefix    = "categories"
	RFQListKeyPrefix     = "rfq"
)
