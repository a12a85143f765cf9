package validator

import (
	"regexp"
	"strings"
)

// phoneRegex accepts an international number with optional leading "+",
// 7 to 15 digits and no leading zero, once separators are removed.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// phoneSeparators are stripped before matching so that "+1 (555) 010-2030" is accepted.
const phoneSeparators = " -.()"

// ValidPhone validates a phone number in loose international format.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(stripChars(value, phoneSeparators))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Optional makes rule pass for blank values.
func Optional(value string, rule Rule) Rule {
	out := rule
	out.Check = func() bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return rule.Check()
	}
	return out
}

func stripChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}
