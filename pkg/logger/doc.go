// Package logger builds the service's *slog.Logger.
//
// [New] writes JSON or text to stdout. [NewWithSentry] additionally forwards
// records to Sentry when a DSN is configured: error records become Sentry
// issues, records at or above SentryConfig.MinLevel are kept as Sentry logs.
// Without a DSN, or when the SDK fails to initialize, it degrades to stdout.
// Register [SentryFlush] as a shutdown hook so buffered events are delivered.
//
// # Context extractors
//
// A [ContextExtractor] pulls one attribute out of a context. Extractors run on
// every record, so request-scoped values such as the request ID land on every
// log line written with the request context:
//
//	log := logger.New(logger.Config{}, middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "rendered template")
//	// {"level":"INFO","msg":"rendered template","request_id":"..."}
//
// An attribute logged explicitly under the same key wins over the extracted one.
// [NewLogHandlerDecorator] applies extractors to any slog.Handler.
//
// # Configuration
//
// [Config] and [SentryConfig] carry env tags:
//
//	LOG_LEVEL          - minimum level (default: info)
//	LOG_FORMAT         - json or text (default: json)
//	SENTRY_DSN         - enables Sentry when set
//	SENTRY_ENVIRONMENT - Sentry environment (default: production)
//	SENTRY_MIN_LEVEL   - lowest level kept as Sentry logs (default: warn)
//
// [NewNope] returns a discarding logger, the default for optional loggers.
package logger
