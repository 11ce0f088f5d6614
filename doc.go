// Package personsvc is a small HTTP service that renders a greeting page,
// returns a fixed JSON message, and writes and lists person records.
//
// # Routes
//
//	GET /              rendered hangman.mustache (text/html)
//	GET /on_state      [{"message":"Hello messaged world"}]
//	GET /insert        inserts {TestName, 123567}, 200 with an empty body
//	GET /get           [{"message":"Retrieved persons: [...]"}]
//	GET /health/live   liveness probe
//	GET /health/ready  readiness probe (store ping)
//
// Any failure is answered with its status code and an empty body.
//
// # Quick Start
//
//	st, err := store.OpenSQLite(ctx, "persons.db", "schema_migrations", log)
//	if err != nil {
//	    return err
//	}
//	app := personsvc.New(personsvc.Deps{
//	    Store:    st,
//	    Renderer: view.NewCached(os.DirFS("templates"), "mustache"),
//	    Logger:   log,
//	})
//	err = app.Run(":8080",
//	    personsvc.Logger(log),
//	    personsvc.StartupHook(st.EnsureSchema),
//	    personsvc.ShutdownHook(func(context.Context) error { return st.Close() }),
//	)
//
// # Handlers
//
// Handlers implement [Handler] and return an [Outcome] or an error:
//
//	func (h *Messages) Routes(r personsvc.Router) {
//	    r.GET("/on_state", h.onState)
//	}
//
//	func (h *Messages) onState(c personsvc.Context) (personsvc.Outcome, error) {
//	    return internal.JSONPayload(internal.Message{Message: "Hello messaged world"}), nil
//	}
//
// A returned error that is not a [Failure] becomes an InternalError (500).
// The binary in cmd/personsvc wires configuration, logging and the store.
package personsvc
