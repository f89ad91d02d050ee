package ports

import (
	"context"
	"time"
)

// RateLimitStore counts hits per key within a rolling window. Incr returns
// the number of hits recorded for the key, including this one.
type RateLimitStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
