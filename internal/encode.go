package internal

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// ErrInvalidOutcome is returned when a handler produced an Outcome without a kind.
var ErrInvalidOutcome = errors.New("internal: handler returned neither outcome nor error")

// outcomeEncoder describes how one OutcomeKind is written to the wire.
// Encoders receive the status explicitly and must not call OutcomeKind methods.
type outcomeEncoder struct {
	encode func(c Context, status int, o Outcome) error
	name   string
	status int
}

// outcomeEncoders holds one entry per OutcomeKind; init verifies none is missing.
var outcomeEncoders = [outcomeKindCount]outcomeEncoder{
	OutcomeOK:      {name: "ok", status: http.StatusOK, encode: encodeEmpty},
	OutcomeCreated: {name: "created", status: http.StatusCreated, encode: encodeEmpty},
	OutcomeJSON:    {name: "json", status: http.StatusOK, encode: encodeJSON},
	OutcomeHTML:    {name: "html", status: http.StatusOK, encode: encodeHTML},
}

func init() {
	for k := OutcomeOK; k < outcomeKindCount; k++ {
		e := outcomeEncoders[k]
		if e.encode == nil || e.status == 0 || e.name == "" {
			panic(fmt.Sprintf("internal: outcome kind %d has no encoder", k))
		}
	}
}

func encodeEmpty(c Context, status int, _ Outcome) error {
	return c.NoContent(status)
}

func encodeJSON(c Context, status int, o Outcome) error {
	return c.JSON(status, o.messages)
}

func encodeHTML(c Context, status int, o Outcome) error {
	return c.Render(status, templ.Raw(o.html))
}

// Encode writes o as the response.
// An unset Outcome returns ErrInvalidOutcome without writing anything.
func Encode(c Context, o Outcome) error {
	if o.kind == outcomeUnset || o.kind >= outcomeKindCount {
		return fmt.Errorf("%w: kind %s", ErrInvalidOutcome, o.kind)
	}
	e := outcomeEncoders[o.kind]
	return e.encode(c, e.status, o)
}

// EncodeFailure writes f as the response: its status code and an empty body.
func EncodeFailure(c Context, f *Failure) error {
	return c.NoContent(f.StatusCode())
}
