package internal

import (
	"context"
	"time"
)

// DefaultQueryTimeout bounds a store round trip when database.query_timeout is unset.
const DefaultQueryTimeout = 5 * time.Second

// QueryContext derives the context a single store call runs under.
func QueryContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
