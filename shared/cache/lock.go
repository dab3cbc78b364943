package cache

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"villadesk/infras/otel"
	"villadesk/shared/failure"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	lockKeyPrefix     = "lock"
	lockRetryInterval = 50 * time.Millisecond
	lockMaxRetries    = 40
)

// releaseScript deletes the lock only if it is still held by this owner.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var ErrLockNotAcquired = failure.Conflict("resource is locked by another operation")

// Locker serializes critical sections across processes using redis SET NX.
type Locker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (release func(), err error)
}

type redisLocker struct {
	client *redis.Client
	otel   otel.Otel
}

func NewLocker(client *redis.Client, ot otel.Otel) Locker {
	return &redisLocker{
		client: client,
		otel:   ot,
	}
}

// Acquire takes the named lock, retrying for a short period before giving up
// with ErrLockNotAcquired. The returned release func is safe to call even if
// the lock has expired in the meantime.
func (l *redisLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(), error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".AcquireLock")
	defer scope.End()

	key := fmt.Sprintf("%s:%s", lockKeyPrefix, name)
	owner := uuid.NewString()

	for attempt := 0; attempt < lockMaxRetries; attempt++ {
		ok, err := l.client.SetNX(ctx, key, owner, ttl).Result()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Msg("failed to acquire lock")

			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		if ok {
			release := func() {
				if err := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{key}, owner).Err(); err != nil && err != redis.Nil {
					log.Error().Err(err).Str("key", key).Msg("failed to release lock")
				}
			}

			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to acquire lock: %w", ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}

	return nil, ErrLockNotAcquired
}
