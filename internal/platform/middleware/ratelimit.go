// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/internal/platform/constants"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// visitor is the token bucket of one client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors tracks one bucket per IP. Idle buckets are swept periodically.
type visitors struct {
	mu    sync.Mutex
	byIP  map[string]*visitor
	limit rate.Limit
	burst int
}

func newVisitors(limit rate.Limit, burst int) *visitors {
	return &visitors{byIP: make(map[string]*visitor), limit: limit, burst: burst}
}

// reserve takes a token for ip, or returns how long the client must wait.
func (set *visitors) reserve(ip string, now time.Time) time.Duration {
	set.mu.Lock()
	defer set.mu.Unlock()

	entry, found := set.byIP[ip]
	if !found {
		entry = &visitor{limiter: rate.NewLimiter(set.limit, set.burst)}
		set.byIP[ip] = entry
	}
	entry.lastSeen = now

	reservation := entry.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)
	}
	return delay
}

func (set *visitors) sweep(now time.Time) {
	set.mu.Lock()
	defer set.mu.Unlock()

	for ip, entry := range set.byIP {
		if now.Sub(entry.lastSeen) > constants.RateLimitClientTTL {
			delete(set.byIP, ip)
		}
	}
}

/*
RateLimit applies a per-IP token bucket to every request.

Description: A rejected request gets 429 RATE_LIMITED and a Retry-After
header. The sweeper goroutine exits when ctx is cancelled.
*/
func RateLimit(ctx context.Context) func(http.Handler) http.Handler {
	set := newVisitors(rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				set.sweep(now)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if wait := set.reserve(RealIP(request), time.Now()); wait > 0 {
				seconds := int(math.Ceil(wait.Seconds()))
				writer.Header().Set("Retry-After", strconv.Itoa(seconds))
				respond.Error(writer, request, apperr.RateLimited(seconds))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
