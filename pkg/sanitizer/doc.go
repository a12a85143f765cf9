// Package sanitizer holds small string transforms for cleaning user input
// and masking personal data before it reaches logs.
//
// Transforms are plain func(string) string values and chain with Compose:
//
//	digits := sanitizer.Compose(sanitizer.Trim, sanitizer.KeepDigits)
//	n := digits(raw)
//
// Sanitizing never validates. A value that cannot be masked is returned as
// is, and it is up to pkg/validator to reject it.
package sanitizer
