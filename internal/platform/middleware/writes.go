// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
)

// readOnlyMethods never trigger the write hook.
var readOnlyMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// AfterWrite runs hook after a mutating request completes with a status
// below 400. The response has already been written when hook runs.
//
// The server uses it to drop the cached public board after any change.
func AfterWrite(hook func(ctx context.Context)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if readOnlyMethods[request.Method] {
				next.ServeHTTP(writer, request)
				return
			}

			recorder := newStatusRecorder(writer)
			next.ServeHTTP(recorder, request)

			if recorder.status < http.StatusBadRequest {
				hook(request.Context())
			}
		})
	}
}
