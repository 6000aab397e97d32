// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/linkdeck/internal/platform/constants"
)

// Counter is an expiring counter store. It is implemented by the Redis store.
type Counter interface {
	Increment(context context.Context, key string, window time.Duration) (int64, error)
	Count(context context.Context, key string) (int64, time.Duration, error)
	Delete(context context.Context, keys ...string) error
}

// Throttle counts failed logins per client IP inside a fixed window.
//
// A nil Counter disables it: every check passes and nothing is recorded.
type Throttle struct {
	counter Counter
	limit   int64
	window  time.Duration
}

// NewThrottle constructs a [Throttle] with the default limit and window.
func NewThrottle(counter Counter) *Throttle {
	return &Throttle{
		counter: counter,
		limit:   constants.LoginFailureLimit,
		window:  constants.LoginFailureWindow,
	}
}

func (throttle *Throttle) key(ip string) string {
	return constants.RedisPrefixLoginFailures + ip
}

/*
Blocked reports whether the IP has used up its failed attempts.

Returns:
  - time.Duration: Remaining lockout, meaningful when blocked
  - bool: Whether further attempts must be refused
  - error: Counter failures
*/
func (throttle *Throttle) Blocked(context context.Context, ip string) (time.Duration, bool, error) {
	if throttle.counter == nil {
		return 0, false, nil
	}

	count, ttl, err := throttle.counter.Count(context, throttle.key(ip))
	if err != nil {
		return 0, false, err
	}
	return ttl, count >= throttle.limit, nil
}

// RecordFailure counts one failed login for the IP.
func (throttle *Throttle) RecordFailure(context context.Context, ip string) error {
	if throttle.counter == nil {
		return nil
	}
	_, err := throttle.counter.Increment(context, throttle.key(ip), throttle.window)
	return err
}

// Reset forgets the failures of the IP.
func (throttle *Throttle) Reset(context context.Context, ip string) error {
	if throttle.counter == nil {
		return nil
	}
	return throttle.counter.Delete(context, throttle.key(ip))
}
