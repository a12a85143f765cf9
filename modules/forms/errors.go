package forms

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formlab/handler"
)

// ErrMalformedSubmission is a structurally invalid submission: a required key
// is missing, a key is unknown or a value has the wrong type. It is answered
// with 400, never with an Error Map.
var ErrMalformedSubmission = handler.NewHTTPError(http.StatusBadRequest, "malformed_submission")

// ErrTooManySubmissions is answered when a client exceeds the submission rate.
var ErrTooManySubmissions = handler.NewHTTPError(http.StatusTooManyRequests, "too_many_submissions")

// malformedSubmission wraps a parse failure of the submission payload.
func malformedSubmission(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedSubmission, err)
}

// asMalformed re-keys a generic 400 from the binders as ErrMalformedSubmission,
// keeping the binder's explanation as the message. Other errors pass through.
func asMalformed(err error) error {
	var httpErr handler.HTTPError
	if !errors.As(err, &httpErr) || httpErr != handler.ErrBadRequest {
		return err
	}
	cause := strings.TrimPrefix(err.Error(), handler.ErrBadRequest.Key+": ")
	return fmt.Errorf("%w: %s", ErrMalformedSubmission, cause)
}
