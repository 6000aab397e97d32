// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth exposes the single-operator login and the first-run init endpoint.

Tokens are minted and verified by the sec package; this package adds the HTTP
surface, input checks and the failed-login throttle in front of it.
*/
package auth

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/internal/platform/sec"
	"github.com/taibuivan/linkdeck/internal/platform/validate"
)

// FieldCredentials is the field named by the login validation error.
const FieldCredentials = "credentials"

// Authenticator is the token service contract used by login.
type Authenticator interface {
	Enabled() bool
	Login(username, password string) (sec.LoginResult, error)
}

// Service guards logins with input checks and the throttle.
type Service struct {
	authenticator Authenticator
	throttle      *Throttle
	logger        *slog.Logger
}

// NewService constructs a login [Service].
func NewService(authenticator Authenticator, throttle *Throttle, logger *slog.Logger) *Service {
	return &Service{
		authenticator: authenticator,
		throttle:      throttle,
		logger:        logger,
	}
}

/*
Login checks credentials for the client at ip.

Description: With auth enabled, empty credentials are rejected before the
token service is consulted, and a throttled IP is refused without checking
anything. With auth disabled every call yields a guest token.

Parameters:
  - context: context.Context
  - ip: string (client address, throttle key)
  - username, password: string

Returns:
  - sec.LoginResult: Success with token, or failure with a generic message
  - error: VALIDATION_ERROR, RATE_LIMITED or internal failures
*/
func (service *Service) Login(context context.Context, ip, username, password string) (sec.LoginResult, error) {
	if !service.authenticator.Enabled() {
		return service.authenticator.Login(username, password)
	}

	if strings.TrimSpace(username) == "" || password == "" {
		return sec.LoginResult{}, validate.Field(FieldCredentials, "Username and password are required")
	}

	retryAfter, blocked, err := service.throttle.Blocked(context, ip)
	if err != nil {
		service.logger.WarnContext(context, "login_throttle_unavailable", slog.Any("error", err))
	}
	if blocked {
		service.logger.WarnContext(context, "login_throttled", slog.String("ip", ip))
		return sec.LoginResult{}, apperr.RateLimited(int(math.Ceil(retryAfter.Seconds())))
	}

	result, err := service.authenticator.Login(username, password)
	if err != nil {
		return sec.LoginResult{}, apperr.Internal(err)
	}

	if !result.Success {
		if err := service.throttle.RecordFailure(context, ip); err != nil {
			service.logger.WarnContext(context, "login_throttle_record_failed", slog.Any("error", err))
		}
		service.logger.WarnContext(context, "login_failed", slog.String("ip", ip))
		return result, nil
	}

	if err := service.throttle.Reset(context, ip); err != nil {
		service.logger.WarnContext(context, "login_throttle_reset_failed", slog.Any("error", err))
	}
	service.logger.InfoContext(context, "login_succeeded", slog.String("ip", ip))

	return result, nil
}
