package personsvc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/personsvc/internal"
	"github.com/dmitrymomot/personsvc/pkg/health"
)

// Type aliases - public API
type (
	// App owns routing, the middleware chain and response encoding.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// Outcome is the successful result of a handler.
	Outcome = internal.Outcome

	// Failure is the error result of a handler.
	Failure = internal.Failure

	// Message is one element of a JSON payload.
	Message = internal.Message
)

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided, after the service defaults.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers extra handlers next to the service routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithHealthChecks overrides the health endpoint configuration.
//
// Example:
//
//	personsvc.WithHealthChecks(
//	    personsvc.WithReadinessCheck("db", db.Healthcheck(st)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// Health options

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Logger sets the runtime logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the graceful shutdown budget.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook runs fn after the port is bound and before serving.
// A failing hook stops the server.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook runs fn after the server stops accepting requests.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context; cancelling it stops the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnListen receives the bound address, useful with ":0".
func OnListen(fn func(net.Addr)) RunOption {
	return internal.OnListen(fn)
}
