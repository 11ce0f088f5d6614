package personsvc

import (
	"log/slog"

	"github.com/dmitrymomot/personsvc/internal"
	"github.com/dmitrymomot/personsvc/internal/handlers"
	"github.com/dmitrymomot/personsvc/internal/store"
	"github.com/dmitrymomot/personsvc/internal/view"
	"github.com/dmitrymomot/personsvc/middlewares"
	"github.com/dmitrymomot/personsvc/pkg/db"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

// Deps are the collaborators the service routes need.
type Deps struct {
	Store       store.Store
	Renderer    view.Renderer
	Logger      *slog.Logger
	TemplateExt string
}

// New assembles the service: request id, request logging and panic recovery
// middleware, the four service routes and the health endpoints.
// Extra options are applied after the defaults.
//
// Example:
//
//	app := personsvc.New(personsvc.Deps{
//	    Store:    st,
//	    Renderer: view.NewCached(os.DirFS("templates"), "mustache"),
//	    Logger:   log,
//	})
//	err := app.Run(":8080", personsvc.StartupHook(st.EnsureSchema))
func New(deps Deps, opts ...Option) *App {
	log := deps.Logger
	if log == nil {
		log = logger.NewNope()
	}

	base := []Option{
		internal.WithLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
		),
		internal.WithHandlers(
			handlers.NewPages(deps.Renderer, deps.TemplateExt),
			handlers.NewMessages(),
			handlers.NewPersons(deps.Store),
		),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("db", db.Healthcheck(deps.Store)),
		),
	}

	return internal.New(append(base, opts...)...)
}
