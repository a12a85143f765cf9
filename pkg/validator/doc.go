// Package validator builds validation out of small Rule values.
//
// A Rule pairs a Check func with the ValidationError to report when it fails.
// Rule constructors are grouped by value kind (strings, numbers, patterns,
// passwords, comparables, phone numbers) and hold no global state.
//
// Apply evaluates every rule and collects the failures into ValidationErrors,
// which implements error. First composes rules so that only the first failing
// one is reported, which is how single-message field validators are built:
//
//	rule := validator.First(
//	    validator.Required("name", name).WithMessage("Name cannot be empty"),
//	    validator.MinLen("name", name, 2).WithMessage("Name must be at least 2 characters long"),
//	)
//	if err := validator.Apply(rule); err != nil {
//	    errs := validator.ExtractValidationErrors(err)
//	    // errs[0].Message is "Name cannot be empty" for a blank name
//	}
//
// Lengths are counted in runes. Default messages are short English phrases;
// every ValidationError also carries a translation key and values.
package validator
