// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/internal/platform/credential"
	"github.com/taibuivan/linkdeck/internal/platform/ctxutil"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
	"github.com/taibuivan/linkdeck/internal/platform/sec"
)

// Client-facing denial messages. They never say why a token was rejected.
const (
	MessageAuthRequired   = "Authentication required"
	MessageInvalidHeader  = "Invalid authorization header"
	MessageReauthenticate = "Token expired or invalid, please re-authenticate"
)

const bearerScheme = "Bearer"

// TokenVerifier is the part of [sec.TokenService] the gate depends on.
type TokenVerifier interface {
	VerifyToken(token string) (*credential.Claims, error)
}

// # Gate Decision

// Decision is the outcome of [Gate.Decide] for one request.
type Decision struct {
	Allowed bool

	// Status, Challenge and Message describe the denial response.
	Status    int
	Challenge bool
	Message   string

	// Reason is the internal cause of a denial, for logs only.
	Reason error

	// Claims are attached to the request context on ALLOW.
	Claims *credential.Claims
}

// Gate decides whether a request may proceed based on its Authorization header.
type Gate struct {
	enabled  bool
	verifier TokenVerifier
}

// NewGate creates a gate. The enabled flag is fixed for the life of the process.
func NewGate(config sec.AuthConfig, verifier TokenVerifier) *Gate {
	return &Gate{enabled: config.Enabled, verifier: verifier}
}

// Decide evaluates a raw Authorization header value.
//
// # Flow
//  1. Auth disabled: allow as guest.
//  2. Header absent: deny 401 with a Bearer challenge.
//  3. Scheme not Bearer or token empty: deny 401.
//  4. Token rejected by the verifier: deny 401, ask to re-authenticate.
//  5. Otherwise allow with the verified claims.
func (gate *Gate) Decide(authHeader string) Decision {
	if !gate.enabled {
		return Decision{
			Allowed: true,
			Claims:  &credential.Claims{Subject: sec.GuestIdentity, Ext: &credential.Extensions{Guest: true}},
		}
	}

	if authHeader == "" {
		return deny(MessageAuthRequired, true, errMissingHeader)
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return deny(MessageInvalidHeader, false, errBadScheme)
	}

	claims, err := gate.verifier.VerifyToken(token)
	if err != nil {
		return deny(MessageReauthenticate, false, err)
	}

	return Decision{Allowed: true, Claims: claims}
}

var (
	errMissingHeader = errors.New("authorization header missing")
	errBadScheme     = errors.New("authorization scheme is not bearer or token is empty")
)

func deny(message string, challenge bool, reason error) Decision {
	return Decision{
		Allowed:   false,
		Status:    http.StatusUnauthorized,
		Challenge: challenge,
		Message:   message,
		Reason:    reason,
	}
}

// # Middleware

// Authenticate applies the gate to every request passing through it.
//
// A denial terminates the request immediately. On ALLOW the claims are
// injected into the request context via [ctxutil.WithClaims].
func Authenticate(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			decision := gate.Decide(request.Header.Get("Authorization"))

			if !decision.Allowed {
				ctxutil.Logger(request.Context()).WarnContext(request.Context(), "auth_denied",
					slog.String("reason", decision.Reason.Error()),
				)

				if decision.Challenge {
					writer.Header().Set("WWW-Authenticate", bearerScheme)
				}

				respond.Error(writer, request, apperr.Unauthorized(decision.Message))
				return
			}

			ctx := ctxutil.WithClaims(request.Context(), decision.Claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
