package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render returns the wrapped error so Wrap passes it to the error handler.
func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the configured error handler instead of rendering a body.
// Use it when the failure is not something the handler itself wants to shape.
//
//	rec, err := payload.Record()
//	if err != nil {
//		return handler.Error(err)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
