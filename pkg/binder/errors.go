package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrBodyTooLarge         = errors.New("request body too large")

	// ErrBinderNotApplicable tells the handler to skip this binder for the
	// current request, e.g. a body binder on a GET request.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
