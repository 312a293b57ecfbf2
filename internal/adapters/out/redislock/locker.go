// Package redislock implements ports.Locker on Redis with SET NX PX and a
// token-checked release, so only the holder can release its lease.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tours/internal/core/ports"

	gonanoid "github.com/matoous/go-nanoid/v2"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "tours:lock:"
	dialTimeout = 5 * time.Second
)

var (
	_ ports.Locker = &Locker{}
	_ ports.Locker = NoopLocker{}
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	rdb    *goredis.Client
	logger *slog.Logger
}

// Connect dials addr and pings it.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func New(rdb *goredis.Client, logger *slog.Logger) *Locker {
	return &Locker{
		rdb:    rdb,
		logger: logger.With("component", "RedisLocker"),
	}
}

func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, false, fmt.Errorf("generate lock token: %w", err)
	}

	fullKey := keyPrefix + key
	err = l.rdb.SetArgs(ctx, fullKey, token, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", key, err)
	}

	release := func() {
		// The caller's context may be done by now.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dialTimeout)
		defer cancel()
		if relErr := releaseScript.Run(releaseCtx, l.rdb, []string{fullKey}, token).Err(); relErr != nil {
			l.logger.WarnContext(releaseCtx, "failed to release lock", "key", key, "error", relErr)
		}
	}
	return release, true, nil
}

// NoopLocker always grants the lease. It is used when Redis is not
// configured and only one instance runs the jobs.
type NoopLocker struct{}

func (NoopLocker) TryLock(_ context.Context, _ string, _ time.Duration) (func(), bool, error) {
	return func() {}, true, nil
}
