// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package credential encodes and decodes the compact bearer token used by the API.

Wire format:

	base64url(header) "." base64url(claims) "." base64url(tag)

The header is always {"alg":"HS256","typ":"JWT"}. The tag is HMAC-SHA256 keyed
with the shared secret over the first two segments joined by ".", so the token
is a regular HS256 JWS and any JWT tooling can inspect it.

The package is stateless. Deciding whether a decoded token is acceptable is the
job of [sec.TokenService]; this package only guarantees structure.
*/
package credential

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned by [Decode] for any structurally invalid token.
var ErrMalformedToken = errors.New("credential: malformed token")

// segmentCount is the number of "."-separated segments in a token.
const segmentCount = 3

// # Claims

// Extensions is the typed extension point for claims beyond the fixed record.
type Extensions struct {
	// Guest marks a token issued while authentication is disabled.
	Guest bool `json:"guest,omitempty"`
}

// Claims is the payload carried inside a token.
type Claims struct {
	Subject   string      `json:"subject"`
	IssuedAt  int64       `json:"issuedAt"`
	ExpiresAt int64       `json:"expiresAt"`
	Ext       *Extensions `json:"ext,omitempty"`
}

// IsGuest reports whether the claims belong to the implicit guest identity.
func (c *Claims) IsGuest() bool {
	return c.Ext != nil && c.Ext.Guest
}

// GetExpirationTime implements [jwt.Claims].
func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

// GetIssuedAt implements [jwt.Claims].
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

// GetNotBefore implements [jwt.Claims].
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements [jwt.Claims].
func (c *Claims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements [jwt.Claims].
func (c *Claims) GetSubject() (string, error) { return c.Subject, nil }

// GetAudience implements [jwt.Claims].
func (c *Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// # Codec

// Decoded is the structural view of a token produced by [Decode].
type Decoded struct {
	Claims *Claims

	// Algorithm is the "alg" value from the header.
	Algorithm string

	// Header, Payload and Tag are the raw base64url segments.
	Header  string
	Payload string
	Tag     string

	// Signature is the decoded tag.
	Signature []byte
}

// SigningInput returns the bytes the tag is computed over.
func (d *Decoded) SigningInput() string {
	return d.Header + "." + d.Payload
}

// Encode serialises the claims and appends an HS256 tag computed with secret.
func Encode(claims *Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Decode splits a token into its segments and parses the header and claims.
// It does not check the tag or expiry.
func Decode(token string) (*Decoded, error) {
	parts := strings.Split(token, ".")
	if len(parts) != segmentCount {
		return nil, ErrMalformedToken
	}
	for _, part := range parts {
		if part == "" {
			return nil, ErrMalformedToken
		}
	}

	parser := jwt.NewParser()
	claims := &Claims{}

	parsed, _, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return nil, ErrMalformedToken
	}

	signature, err := parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, ErrMalformedToken
	}

	algorithm, _ := parsed.Header["alg"].(string)

	return &Decoded{
		Claims:    claims,
		Algorithm: algorithm,
		Header:    parts[0],
		Payload:   parts[1],
		Tag:       parts[2],
		Signature: signature,
	}, nil
}
