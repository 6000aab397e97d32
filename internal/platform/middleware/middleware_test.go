// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/linkdeck/internal/platform/constants"
	"github.com/taibuivan/linkdeck/internal/platform/ctxutil"
	"github.com/taibuivan/linkdeck/internal/platform/middleware"
)

type corsConfig struct {
	development bool
	allowed     string
}

func (config corsConfig) IsDevelopment() bool {
	return config.development
}

func (config corsConfig) IsOriginAllowed(origin string) bool {
	return origin == config.allowed
}

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(status)
	})
}

/*
TestAfterWrite verifies that the hook fires only for successful writes.
*/
func TestAfterWrite(t *testing.T) {
	tests := []struct {
		name   string
		method string
		status int
		fired  bool
	}{
		{"put_ok", http.MethodPut, http.StatusOK, true},
		{"delete_no_content", http.MethodDelete, http.StatusNoContent, true},
		{"post_created", http.MethodPost, http.StatusCreated, true},
		{"put_failed", http.MethodPut, http.StatusInternalServerError, false},
		{"post_invalid", http.MethodPost, http.StatusBadRequest, false},
		{"get", http.MethodGet, http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fired := false
			handler := middleware.AfterWrite(func(context.Context) { fired = true })(statusHandler(tt.status))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(tt.method, "/api/groups", nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.fired, fired)
		})
	}
}

/*
TestCORS verifies the development and allow-list modes.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		config  corsConfig
		origin  string
		allowed bool
	}{
		{"development", corsConfig{development: true}, "http://localhost:5173", true},
		{"listed", corsConfig{allowed: "https://links.example.com"}, "https://links.example.com", true},
		{"unlisted", corsConfig{allowed: "https://links.example.com"}, "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodOptions, "/api/groups", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)
			recorder := httptest.NewRecorder()

			middleware.CORS(tt.config)(statusHandler(http.StatusOK)).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, recorder.Header().Get("Access-Control-Expose-Headers"), "WWW-Authenticate")
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestRequestID verifies generation and propagation of the correlation id.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.RequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "req-42", seen)

	// Control characters are not echoed into logs.
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "evil\nline")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.NotEqual(t, "evil\nline", seen)
	assert.NotEmpty(t, seen)
}

/*
TestRateLimit verifies that a client exceeding its burst gets 429 with Retry-After.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx)(statusHandler(http.StatusOK))

	send := func(ip string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/api/public/groups", nil)
		request.RemoteAddr = ip + ":5000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	var last *httptest.ResponseRecorder
	for range constants.DefaultRateLimitBurst + 50 {
		last = send("192.0.2.10")
		if last.Code == http.StatusTooManyRequests {
			break
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "RATE_LIMITED")

	assert.Equal(t, http.StatusOK, send("192.0.2.11").Code)
}

/*
TestRealIP verifies that proxy headers are ignored unless chi's RealIP rewrote RemoteAddr.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:4000"
	request.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	request.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "10.0.0.1", middleware.RealIP(request))

	var seen string
	trusted := chimw.RealIP(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = middleware.RealIP(request)
	}))
	trusted.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "203.0.113.9", seen)
}

/*
TestPanicRecovery verifies that a panic becomes a generic 500.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "boom")
}
