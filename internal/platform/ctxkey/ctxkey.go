// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys shared by middleware and handlers.
// Only ctxutil reads them directly.
package ctxkey

// key is unexported so no other package can forge a matching key.
type key string

const (
	// KeyRequestID stores the X-Request-ID of the current request.
	KeyRequestID key = "request_id"

	// KeyClaims stores the [credential.Claims] accepted by the auth gate.
	KeyClaims key = "auth_claims"

	// KeyLogger stores the request-scoped [*log/slog.Logger].
	KeyLogger key = "logger"
)
