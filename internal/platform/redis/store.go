// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store exposes the handful of key operations the application needs.
type Store struct {
	client redis.Cmdable
}

// NewStore wraps a connected client.
func NewStore(client redis.Cmdable) *Store {
	return &Store{client: client}
}

/*
Get returns the raw value at key.

Returns:
  - []byte: Value, nil on a miss
  - bool: Whether the key existed
  - error: Transport failures only; a miss is not an error
*/
func (store *Store) Get(context stdctx.Context, key string) ([]byte, bool, error) {
	value, err := store.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value at key with the given expiry.
func (store *Store) Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error {
	if err := store.client.Set(context, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys; missing keys are ignored.
func (store *Store) Delete(context stdctx.Context, keys ...string) error {
	if err := store.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis: del: %w", err)
	}
	return nil
}

/*
Increment bumps a counter and returns its new value.

Description: The expiry is set when the counter is created, so the window
starts at the first increment and is not extended by later ones.
*/
func (store *Store) Increment(context stdctx.Context, key string, window time.Duration) (int64, error) {
	count, err := store.client.Incr(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis: incr %s: %w", key, err)
	}
	if count == 1 {
		if err := store.client.Expire(context, key, window).Err(); err != nil {
			return 0, fmt.Errorf("redis: expire %s: %w", key, err)
		}
	}
	return count, nil
}

/*
Count reads a counter and its remaining lifetime.

Returns:
  - int64: Current value, 0 if absent
  - time.Duration: Remaining TTL, 0 if absent or persistent
  - error: Transport failures
*/
func (store *Store) Count(context stdctx.Context, key string) (int64, time.Duration, error) {
	count, err := store.client.Get(context, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("redis: get %s: %w", key, err)
	}

	ttl, err := store.client.TTL(context, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis: ttl %s: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return count, ttl, nil
}
