package userform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord signals a structurally wrong submission: a required key is
// missing, a key is unknown, or a value has the wrong JSON type. It is a caller
// contract violation and is never reported through Errors.
var ErrMalformedRecord = errors.New("malformed submission record")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedRecord}, args...)...)
}

// Errors is the Error Map: field name to rejection message, one entry per
// failing field. An empty map means the submission was accepted.
type Errors map[string]string

// NewErrors returns an empty Error Map.
func NewErrors() Errors {
	return make(Errors)
}

func (e Errors) set(f Field, reason string) {
	e[f.String()] = reason
}

func (e Errors) Has(f Field) bool {
	_, ok := e[f.String()]
	return ok
}

// Get returns the message for f, or "" when f passed.
func (e Errors) Get(f Field) string {
	return e[f.String()]
}

// Fields returns the failing fields in canonical order.
func (e Errors) Fields() []Field {
	var out []Field
	for _, f := range Fields() {
		if e.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Details converts the map to the multi-message shape used by JSON error bodies.
func (e Errors) Details() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e))
	for k, v := range e {
		out[k] = []string{v}
	}
	return out
}

// Error implements error so a rejected submission can travel as one.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Get(f)))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorsFromDetails builds an Error Map from a JSON error body, keeping the
// first message of each known field. Unknown keys are dropped.
func ErrorsFromDetails(details map[string][]string) Errors {
	out := NewErrors()
	for k, msgs := range details {
		f := Field(k)
		if !f.Known() || len(msgs) == 0 || msgs[0] == "" {
			continue
		}
		out.set(f, msgs[0])
	}
	return out
}
