package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLocked = errors.New("lock is held by another owner")

// releaseScript deletes the key only while it still holds the owner's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type ReleaseFunc func(ctx context.Context) error

type RedisLocker struct {
	client *redis.Client
	prefix string
}

func NewRedisLocker(client *redis.Client, prefix string) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix}
}

func (l *RedisLocker) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Acquire takes key for at most ttl. It fails with ErrLocked when another
// owner holds it.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	k := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, k, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis setnx failed: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{k}, token).Err(); err != nil {
			return fmt.Errorf("redis release failed: %w", err)
		}
		return nil
	}, nil
}
