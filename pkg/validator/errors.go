package validator

import "errors"

// ErrValidationFailed is reported by a composed rule that failed without a
// recorded cause.
var ErrValidationFailed = errors.New("validation failed")
