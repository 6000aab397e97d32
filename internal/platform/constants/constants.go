// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants holds the fixed values shared across layers: server
timing, request limits, header names and Redis keys.

Values an operator may want to change belong in config, not here.
*/
package constants

import "time"

// AppName tags log lines, Postgres sessions and Redis connections.
const AppName = "linkdeck"

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds a whole request, and every SQL statement.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests.
	ShutdownTimeout = 30 * time.Second
)

// # Request Limits

const (
	// DefaultRateLimitRPS and DefaultRateLimitBurst size the per-IP bucket.
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often idle buckets are swept.
	RateLimitCleanupInterval = time.Minute

	// RateLimitClientTTL is the idle time after which a bucket is dropped.
	RateLimitClientTTL = 3 * time.Minute

	// LoginFailureLimit failed logins per IP inside LoginFailureWindow lock
	// the IP out until the window expires.
	LoginFailureLimit  = 5
	LoginFailureWindow = 15 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID = "X-Request-ID"
	HeaderOrigin     = "Origin"
)

// # Health Payload

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Keys

const (
	// RedisPrefixLoginFailures + client IP holds a failed-login counter.
	RedisPrefixLoginFailures = "auth:login_fail:"

	// RedisKeyPublicListing holds the rendered public board.
	RedisKeyPublicListing = "listing:public"
)
