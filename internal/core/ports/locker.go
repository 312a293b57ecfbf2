package ports

import (
	"context"
	"time"
)

// Locker provides a best-effort mutual exclusion lease across service
// instances. TryLock returns ok=false without error when another holder has
// the lease; release must be called by the holder.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}
