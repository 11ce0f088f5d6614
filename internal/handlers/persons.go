package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/personsvc/internal"
	"github.com/dmitrymomot/personsvc/internal/store"
)

// Fixed record written by /insert.
var defaultPerson = store.Person{Name: "TestName", Number: 123567}

// PersonStore is the part of store.Store the person routes need.
type PersonStore interface {
	Insert(ctx context.Context, p store.Person) error
	SelectAll(ctx context.Context) ([]store.Person, error)
}

// Persons writes and lists person records.
type Persons struct {
	store PersonStore
}

// NewPersons creates the person handler.
func NewPersons(st PersonStore) *Persons {
	return &Persons{store: st}
}

// Routes implements internal.Handler.
func (h *Persons) Routes(r internal.Router) {
	r.GET("/insert", h.insert)
	r.GET("/get", h.list)
}

func (h *Persons) insert(c internal.Context) (internal.Outcome, error) {
	if err := h.store.Insert(c, defaultPerson); err != nil {
		return internal.Outcome{}, internal.ErrInternal(err)
	}
	c.LogDebug("person inserted", slog.String("name", defaultPerson.Name))
	return internal.OK(), nil
}

// list reports every record as a single message; the records are
// formatted into the message text, not returned as structured JSON.
func (h *Persons) list(c internal.Context) (internal.Outcome, error) {
	persons, err := h.store.SelectAll(c)
	if err != nil {
		return internal.Outcome{}, internal.ErrInternal(err)
	}
	return internal.JSONPayload(internal.Message{
		Message: FormatPersons(persons),
	}), nil
}

// FormatPersons renders records the way /get reports them,
// e.g. "Retrieved persons: [{Name:TestName Number:123567}]".
func FormatPersons(persons []store.Person) string {
	return fmt.Sprintf("Retrieved persons: %+v", persons)
}
