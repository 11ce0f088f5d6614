// Package middlewares provides the HTTP middleware the service installs globally.
//
// # Request ID
//
// RequestID keeps an incoming X-Request-ID (or X-Correlation-ID) or
// generates a UUID, stores it in the request context and echoes it in the
// response. RequestIDExtractor adds it to every log record:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover turns a handler panic into an InternalError wrapping *PanicError,
// so the client receives 500 and the stack lands in the log.
//
// # Request Logger
//
// RequestLogger writes one record per request with method, path, status and duration.
//
// # Order
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),     // first: every later record carries the ID
//	    middlewares.RequestLogger(), // sees the final status
//	    middlewares.Recover(),       // innermost: catches handler panics
//	)
package middlewares
