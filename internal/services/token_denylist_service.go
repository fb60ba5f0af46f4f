package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const denylistPrefix = "denylist:"

// TokenDenylist records revoked tokens until they would have expired anyway.
// Without a redis client it keeps entries in process memory.
type TokenDenylist struct {
	client *redis.Client

	mu    sync.Mutex
	local map[string]time.Time
	now   func() time.Time
}

func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client, local: make(map[string]time.Time), now: time.Now}
}

func (d *TokenDenylist) AddToDenylist(ctx context.Context, tokenString string, expiration time.Duration) error {
	if expiration <= 0 {
		return nil
	}
	key := denylistPrefix + tokenString
	if d.client != nil {
		return d.client.Set(ctx, key, 1, expiration).Err()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	d.pruneLocked(now)
	d.local[key] = now.Add(expiration)
	return nil
}

// pruneLocked drops entries whose tokens have expired. Callers hold d.mu.
func (d *TokenDenylist) pruneLocked(now time.Time) {
	for key, expiry := range d.local {
		if now.After(expiry) {
			delete(d.local, key)
		}
	}
}

func (d *TokenDenylist) IsDenylisted(ctx context.Context, tokenString string) (bool, error) {
	key := denylistPrefix + tokenString
	if d.client != nil {
		val, err := d.client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) { // key does not exist
				return false, nil
			}
			return false, err
		}
		return val != "", nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	expiry, ok := d.local[key]
	if !ok {
		return false, nil
	}
	if d.now().After(expiry) {
		delete(d.local, key)
		return false, nil
	}
	return true, nil
}
