package internal

import "fmt"

// OutcomeKind identifies a successful handler result.
type OutcomeKind uint8

// Outcome kinds. The zero value is reserved so that an unset Outcome
// is rejected by the encoder instead of silently producing a 200.
const (
	outcomeUnset OutcomeKind = iota
	OutcomeOK
	OutcomeCreated
	OutcomeJSON
	OutcomeHTML
	outcomeKindCount
)

// String returns the kind name.
func (k OutcomeKind) String() string {
	if k == outcomeUnset {
		return "unset"
	}
	if k >= outcomeKindCount {
		return fmt.Sprintf("OutcomeKind(%d)", k)
	}
	return outcomeEncoders[k].name
}

// StatusCode returns the HTTP status for the kind, or 0 if the kind is unset or unknown.
func (k OutcomeKind) StatusCode() int {
	if k == outcomeUnset || k >= outcomeKindCount {
		return 0
	}
	return outcomeEncoders[k].status
}

// Message is a single JSON message returned to callers.
type Message struct {
	Message string `json:"message"`
}

// Outcome is the successful result of a handler.
// Construct it with OK, Created, JSONPayload or HTMLPayload.
type Outcome struct {
	messages []Message
	html     string
	kind     OutcomeKind
}

// OK is an empty 200 response.
func OK() Outcome {
	return Outcome{kind: OutcomeOK}
}

// Created is an empty 201 response.
func Created() Outcome {
	return Outcome{kind: OutcomeCreated}
}

// JSONPayload is a 200 response carrying a JSON array of messages.
// A nil list is encoded as an empty array.
func JSONPayload(messages ...Message) Outcome {
	if messages == nil {
		messages = []Message{}
	}
	return Outcome{kind: OutcomeJSON, messages: messages}
}

// HTMLPayload is a 200 response carrying an HTML document.
func HTMLPayload(html string) Outcome {
	return Outcome{kind: OutcomeHTML, html: html}
}

// Kind returns the outcome kind.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// Messages returns the JSON payload of a JSONPayload outcome.
func (o Outcome) Messages() []Message {
	return o.messages
}

// HTML returns the body of an HTMLPayload outcome.
func (o Outcome) HTML() string {
	return o.html
}
