// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/linkdeck/internal/platform/constants"
)

// OriginPolicy decides which browser origins may call the API.
// [*config.Config] implements it.
type OriginPolicy interface {
	IsDevelopment() bool
	IsOriginAllowed(origin string) bool
}

var (
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsRequestHeaders = strings.Join([]string{
		"Accept", "Authorization", "Content-Type", constants.HeaderXRequestID,
	}, ", ")
	corsExposedHeaders = strings.Join([]string{
		"Content-Disposition", "Retry-After", "WWW-Authenticate", constants.HeaderXRequestID,
	}, ", ")
)

/*
CORS reflects allowed origins and short-circuits pre-flight requests.

Description: Any origin is allowed in development. Otherwise the origin must
be on the ALLOWED_ORIGINS list. Requests without an Origin header pass
through untouched.
*/
func CORS(policy OriginPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			header := writer.Header()
			header.Add("Vary", constants.HeaderOrigin)

			if policy.IsDevelopment() || policy.IsOriginAllowed(origin) {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", corsMethods)
				header.Set("Access-Control-Allow-Headers", corsRequestHeaders)
				header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
				header.Set("Access-Control-Max-Age", "600")
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
