package handlers

import "github.com/dmitrymomot/personsvc/internal"

const stateMessage = "Hello messaged world"

// Messages serves static JSON messages.
type Messages struct{}

// NewMessages creates the message handler.
func NewMessages() *Messages {
	return &Messages{}
}

// Routes implements internal.Handler.
func (h *Messages) Routes(r internal.Router) {
	r.GET("/on_state", h.onState)
}

func (h *Messages) onState(internal.Context) (internal.Outcome, error) {
	return internal.JSONPayload(internal.Message{Message: stateMessage}), nil
}
