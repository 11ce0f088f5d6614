package handlers

import (
	"log/slog"

	"github.com/dmitrymomot/personsvc/internal"
	"github.com/dmitrymomot/personsvc/internal/view"
)

// Greeting page values.
const (
	greetingTitle  = "TestName"
	greetingNumber = 123
)

// Pages serves server-rendered HTML.
type Pages struct {
	renderer view.Renderer
	template string
}

// NewPages creates the page handler. ext selects the greeting template file,
// "hangman.<ext>"; empty means view.DefaultExt.
func NewPages(renderer view.Renderer, ext string) *Pages {
	if ext == "" {
		ext = view.DefaultExt
	}
	return &Pages{renderer: renderer, template: "hangman." + ext}
}

// Routes implements internal.Handler.
func (h *Pages) Routes(r internal.Router) {
	r.GET("/", h.greet)
}

// greet renders the greeting template.
func (h *Pages) greet(c internal.Context) (internal.Outcome, error) {
	content := view.TemplateContext{Title: greetingTitle, NumberData: greetingNumber}

	html, err := h.renderer.Render(h.template, content)
	if err != nil {
		return internal.Outcome{}, internal.ErrInternal(err)
	}

	c.LogInfo("rendered template",
		slog.String("template", h.template),
		slog.String("title", content.Title),
		slog.Int("number_data", content.NumberData),
	)
	return internal.HTMLPayload(html), nil
}
