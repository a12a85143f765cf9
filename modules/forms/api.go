package forms

import (
	"net/http"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

// apiSubmit is the mock API. The JSON binder has already checked the body
// against the Submission schema.
//
//	200 {"data": {user}}
//	422 {"error": {"code": "validation_error", "details": {field: [message]}, "errors": {field: message}}}
//	400 {"error": {"code": "malformed_submission", "message": ...}}
func (s *Service) apiSubmit(ctx handler.Context, p userform.Payload) handler.Response {
	rec, err := p.Record()
	if err != nil {
		return handler.Error(malformedSubmission(err))
	}

	user, errs, err := s.judge(ctx, surfaceAPI, rec)
	if err != nil {
		return handler.Error(err)
	}
	if !errs.IsEmpty() {
		return handler.JSONError(handler.ValidationErrorFrom(errs.Details()))
	}
	return handler.JSON(user)
}

// openapiDocument serves the embedded OpenAPI document.
func (s *Service) openapiDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("X-API-Version", s.schema.Version())
	_, _ = w.Write(s.schema.Document())
}
