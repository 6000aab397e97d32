// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides token issuance, verification and credential checks.
//
// # Architecture
//
// This package isolates security-sensitive code (token signing, password
// comparison) from the domain logic. [TokenService] is the only component
// allowed to mint a token or declare one valid; the HTTP gate and the login
// handler both go through it.
package sec

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/linkdeck/internal/platform/credential"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 24 * time.Hour

// GuestIdentity is the subject of tokens issued while auth is disabled.
const GuestIdentity = "guest"

// LoginFailedMessage is the single client-facing message for a rejected login.
const LoginFailedMessage = "Invalid username or password"

var (
	// ErrExpiredToken means the tag matched but expiresAt has passed.
	ErrExpiredToken = errors.New("sec: token expired")

	// ErrInvalidSignature means the tag did not match or the algorithm is not HS256.
	ErrInvalidSignature = errors.New("sec: invalid token signature")
)

// # Configuration

// AuthConfig is the process-wide access-control configuration, read once at
// startup and never mutated.
type AuthConfig struct {
	Enabled  bool
	Username string

	// Password is compared exactly. PasswordHash, when set instead, is a
	// bcrypt hash checked with [CheckPasswordHash].
	Password     string
	PasswordHash string

	Secret []byte
}

// # Token Service

// LoginResult is the outcome of [TokenService.Login].
type LoginResult struct {
	Success bool
	Token   string
	Message string
}

// TokenService issues and verifies bearer tokens.
type TokenService struct {
	config AuthConfig
	now    func() time.Time
}

// Option customises a [TokenService].
type Option func(*TokenService)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(service *TokenService) {
		service.now = now
	}
}

// NewTokenService creates a new TokenService for the given configuration.
func NewTokenService(config AuthConfig, options ...Option) *TokenService {
	service := &TokenService{
		config: config,
		now:    time.Now,
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// Enabled reports whether authentication is enforced.
func (service *TokenService) Enabled() bool {
	return service.config.Enabled
}

// Issue creates a token for identity, valid for [TokenLifetime].
func (service *TokenService) Issue(identity string) (string, error) {
	return service.issue(identity, nil)
}

func (service *TokenService) issue(identity string, extensions *credential.Extensions) (string, error) {
	issuedAt := service.now().Unix()
	claims := &credential.Claims{
		Subject:   identity,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt + int64(TokenLifetime/time.Second),
		Ext:       extensions,
	}

	token, err := credential.Encode(claims, service.config.Secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}
	return token, nil
}

// VerifyToken checks the structure, tag and expiry of a token.
//
// The returned error is one of [credential.ErrMalformedToken],
// [ErrInvalidSignature] or [ErrExpiredToken]. Callers must not forward the
// distinction to clients.
func (service *TokenService) VerifyToken(token string) (*credential.Claims, error) {
	decoded, err := credential.Decode(token)
	if err != nil {
		return nil, err
	}

	if decoded.Algorithm != jwt.SigningMethodHS256.Alg() {
		return nil, ErrInvalidSignature
	}

	// Verify compares with hmac.Equal, which is constant time.
	if err := jwt.SigningMethodHS256.Verify(decoded.SigningInput(), decoded.Signature, service.config.Secret); err != nil {
		return nil, ErrInvalidSignature
	}

	if decoded.Claims.ExpiresAt <= service.now().Unix() {
		return nil, ErrExpiredToken
	}

	return decoded.Claims, nil
}

// # Login

// Login checks a username/password pair and issues a token on success.
//
// With auth disabled every call succeeds with a guest token. With auth
// enabled the comparison is exact and case-sensitive; a failure never says
// which of the two values was wrong.
func (service *TokenService) Login(username, password string) (LoginResult, error) {
	if !service.config.Enabled {
		token, err := service.issue(GuestIdentity, &credential.Extensions{Guest: true})
		if err != nil {
			return LoginResult{}, err
		}
		return LoginResult{Success: true, Token: token}, nil
	}

	// Evaluate both checks so the timing does not reveal which one failed.
	usernameOK := constantTimeEqual(username, service.config.Username)
	passwordOK := service.checkPassword(password)

	if !usernameOK || !passwordOK {
		return LoginResult{Success: false, Message: LoginFailedMessage}, nil
	}

	token, err := service.issue(username, nil)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Success: true, Token: token}, nil
}

func (service *TokenService) checkPassword(password string) bool {
	if service.config.PasswordHash != "" {
		return CheckPasswordHash(password, service.config.PasswordHash)
	}
	return constantTimeEqual(password, service.config.Password)
}

// constantTimeEqual compares two strings without early exit on the first
// differing byte. Lengths still leak, which is acceptable for a single
// configured credential.
func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
