// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net"
	"net/http"
)

// RealIP returns the client address used for rate limiting and the login
// throttle: the host part of RemoteAddr.
//
// Proxy headers are honoured only when the server installs chi's RealIP
// middleware (TRUST_PROXY_HEADERS=true), which rewrites RemoteAddr first.
func RealIP(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
