package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing fields in the order they first failed.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// failure reports the error of the rule that actually failed when the
	// rule is a composition of other rules. Nil for plain rules.
	failure func() ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of its default message.
// The translation key and values are preserved.
func (r Rule) WithMessage(msg string) Rule {
	out := r
	out.Error.Message = msg
	if r.failure != nil {
		inner := r.failure
		out.failure = func() ValidationError {
			e := inner()
			e.Message = msg
			return e
		}
	}
	return out
}

// err returns the error to report after Check returned false.
func (r Rule) err() ValidationError {
	if r.failure != nil {
		return r.failure()
	}
	return r.Error
}

// First composes rules into one that evaluates them in order and reports only
// the first failing rule. Rules after the first failure are not evaluated.
//
//	rule := validator.First(
//	    validator.Required("name", name).WithMessage("Name cannot be empty"),
//	    validator.MinLen("name", name, 2).WithMessage("Name must be at least 2 characters long"),
//	)
func First(rules ...Rule) Rule {
	var failed *ValidationError

	rule := Rule{
		Check: func() bool {
			failed = nil
			for _, r := range rules {
				if !r.Check() {
					e := r.err()
					failed = &e
					return false
				}
			}
			return true
		},
		failure: func() ValidationError {
			if failed == nil {
				return ValidationError{Message: ErrValidationFailed.Error()}
			}
			return *failed
		},
	}
	if len(rules) > 0 {
		rule.Error = rules[0].Error
	}
	return rule
}

// Apply executes multiple validation rules and returns any validation errors.
// Every rule is evaluated; failures are reported in rule order.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.err())
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
