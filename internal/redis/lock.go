package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockPrefix = "lock:"

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireLock attempts to acquire the named lock.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseLock releases the named lock.
func (s *LockStore) ReleaseLock(ctx context.Context, key string) error {
	return s.client.Del(ctx, lockPrefix+key).Err()
}
