// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil reads and writes the per-request values set by middleware.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/linkdeck/internal/platform/credential"
	"github.com/taibuivan/linkdeck/internal/platform/ctxkey"
)

// WithRequestID attaches the correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// RequestID returns the correlation id, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// Logger returns the request-scoped logger, falling back to [slog.Default].
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithClaims attaches the claims accepted by the auth gate.
func WithClaims(ctx context.Context, claims *credential.Claims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyClaims, claims)
}

// ClaimsFrom returns the gate's claims, or nil when the request was not gated.
func ClaimsFrom(ctx context.Context) *credential.Claims {
	claims, _ := ctx.Value(ctxkey.KeyClaims).(*credential.Claims)
	return claims
}
