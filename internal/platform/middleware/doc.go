// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the HTTP decorators that wrap every Linkdeck route.

Order in the server chain:

  - RequestID and StructuredLogger give each request a correlation id and a
    scoped logger.
  - RateLimit and PanicRecovery protect the process.
  - CORS answers browser pre-flights.
  - Authenticate and AfterWrite wrap only the management routes.

Errors are rendered through [respond.Error] so that every rejection carries
the same envelope as a handler error.
*/
package middleware
