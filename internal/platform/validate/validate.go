// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate accumulates field-level failures into one
// VALIDATION_ERROR so a client sees every problem of a payload at once.
//
// Handlers check request shape; services check business rules. Stores
// trust their input.
package validate

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/linkdeck/internal/platform/apperr"
)

// messageFailed is the top-level message of every validation error.
const messageFailed = "Validation failed"

// ErrInvalidJSON is returned when a request body cannot be read or decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator collects failures through chained rule calls.
//
// The zero value is ready to use. Use one Validator per payload; it is not
// safe for concurrent use.
type Validator struct {
	failures []apperr.FieldError
}

// Required fails on an empty or whitespace-only value.
func (v *Validator) Required(field, value string) *Validator {
	return v.Custom(field, strings.TrimSpace(value) == "", "This field is required")
}

// MaxLen fails when value has more than limit characters (runes, not bytes).
func (v *Validator) MaxLen(field, value string, limit int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) > limit, fmt.Sprintf("Maximum %d characters", limit))
}

// URL fails unless value is an absolute http or https URL with a host.
func (v *Validator) URL(field, value string) *Validator {
	parsed, err := url.Parse(value)
	valid := err == nil && parsed.Host != "" && (parsed.Scheme == "http" || parsed.Scheme == "https")
	return v.Custom(field, !valid, "Must be a valid http(s) URL")
}

// OneOf fails unless value is one of allowed.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	return v.Custom(field, !slices.Contains(allowed, value), "Must be one of: "+strings.Join(allowed, ", "))
}

// Custom records message for field when failed is true.
//
//	v.Custom("version", doc.Version != 1, "Must be 1")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.failures = append(v.failures, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Err ends a chain: nil when every rule passed, otherwise one
// VALIDATION_ERROR carrying all failures in call order.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError(messageFailed, v.failures...)
}

// Field builds a VALIDATION_ERROR for a single field.
func Field(field, message string) *apperr.AppError {
	return apperr.ValidationError(messageFailed, apperr.FieldError{Field: field, Message: message})
}
