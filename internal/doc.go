// Package internal provides the request-handling core of the service.
//
// Import "github.com/dmitrymomot/personsvc" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, the middleware chain and response encoding
//   - Context: request/response access and logging helpers
//   - Router: interface handlers use to declare routes
//   - Handler: declares routes on a Router
//   - HandlerFunc: func(Context) (Outcome, error)
//   - Middleware: wraps a HandlerFunc
//
// # Outcomes and Failures
//
// A handler returns exactly one of an Outcome or an error. A non-nil error
// always wins. The zero Outcome has no kind and is answered as an
// InternalError, so a handler cannot silently produce a response.
//
//	Outcome       status  body
//	OK            200     empty
//	Created       201     empty
//	JSONPayload   200     JSON array of Message
//	HTMLPayload   200     HTML document
//
//	Failure       status  body
//	BadRequest    400     empty
//	Forbidden     403     empty
//	Unauthorized  401     empty
//	Internal      500     empty
//
// Errors that carry no *Failure become InternalError. Both kinds are closed
// enums whose status tables are checked in init, so a kind without an
// encoding fails at process start.
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to store calls directly:
//
//	func (h *Persons) list(c internal.Context) (internal.Outcome, error) {
//	    persons, err := h.store.SelectAll(c)
//	    if err != nil {
//	        return internal.Outcome{}, internal.ErrInternal(err)
//	    }
//	    return internal.JSONPayload(internal.Message{Message: FormatPersons(persons)}), nil
//	}
//
// # Lifecycle
//
// App.Run binds the listener, runs startup hooks, serves until SIGINT or
// SIGTERM (or the base context ends), then shuts the server down and runs
// shutdown hooks within the shutdown timeout. All errors are joined.
package internal
