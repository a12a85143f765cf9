package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError carries per-field messages. JSON error bodies render it as
// 422 with code "validation_error" and the fields under "details".
type ValidationError url.Values

// Error lists the first message of every field, sorted by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field][0]))
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom copies a field-to-messages map.
func ValidationErrorFrom(details map[string][]string) ValidationError {
	e := make(ValidationError, len(details))
	for field, messages := range details {
		e[field] = append([]string(nil), messages...)
	}
	return e
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
