package internal

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/personsvc/pkg/health"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App owns the router, the middleware chain and the response encoding.
// App is immutable after creation - all configuration is done via New().
type App struct {
	router       chi.Router
	healthConfig *healthConfig
	logger       *slog.Logger
	middlewares  []Middleware
	handlers     []Handler
}

// New creates a new application with the given options.
//
// Example:
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(handlers.NewMessages(), handlers.NewPersons(st)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run starts the HTTP server and blocks until shutdown.
//
// Example:
//
//	err := app.Run(":8080",
//	    internal.Logger(log),
//	    internal.StartupHook(st.EnsureSchema),
//	    internal.ShutdownHook(st.Close),
//	)
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		startupHooks:    cfg.startupHooks,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
		onListen:        cfg.onListen,
	})
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	// Apply global middleware
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	// Register health check endpoints
	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
		a.router.Get(a.healthConfig.readinessPath, health.ReadinessHandler(a.healthConfig.checks,
			health.WithLogger(a.logger),
		))
	}

	// Register handlers
	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger)
		out, err := h(c)
		a.respond(c, out, err)
	}
}

// respond writes the handler result exactly once.
// A non-nil error wins over the outcome; an unset outcome with nothing written
// is a handler bug and is answered with InternalError.
func (a *App) respond(c Context, out Outcome, err error) {
	if err != nil {
		a.handleError(c, err)
		return
	}
	if c.Written() {
		return
	}
	if err := Encode(c, out); err != nil {
		if errors.Is(err, ErrInvalidOutcome) {
			a.handleError(c, err)
			return
		}
		// Headers are already sent, only the log is left.
		c.LogError("response encoding failed", slog.Any("error", err))
	}
}

// handleError converts err into a Failure, logs it, and writes its encoding.
func (a *App) handleError(c Context, err error) {
	f := ToFailure(err)

	attrs := []any{
		slog.Int("status", f.StatusCode()),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	}
	if f.Err != nil {
		attrs = append(attrs, slog.Any("error", f.Err))
	}
	if f.Kind == FailureInternal {
		c.LogError("request failed", attrs...)
	} else {
		c.LogWarn("request rejected", attrs...)
	}

	if c.Written() {
		return
	}
	_ = EncodeFailure(c, f)
}
