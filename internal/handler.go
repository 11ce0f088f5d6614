package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PersonsHandler struct {
//	    store PersonStore
//	}
//
//	func (h *PersonsHandler) Routes(r internal.Router) {
//	    r.GET("/insert", h.insert)
//	    r.GET("/get", h.list)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It returns either an Outcome to encode or an error.
// A non-nil error always wins over the Outcome and is encoded as a Failure.
type HandlerFunc func(c Context) (Outcome, error)

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing,
// or observe the handler result.
//
// Example:
//
//	func Deny(next internal.HandlerFunc) internal.HandlerFunc {
//	    return func(c internal.Context) (internal.Outcome, error) {
//	        if c.Header("X-Blocked") != "" {
//	            return internal.Outcome{}, internal.ErrForbidden(nil)
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc
