// Package binder decodes HTTP request bodies into typed request structs for
// handler.Wrap.
//
// Two binders are provided:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data, fields
//     tagged `form:"name"`. Checkbox values ("on") bind to bool fields.
//   - JSON(opts...): application/json, strict decoding (unknown fields and
//     trailing data are rejected) with a size limit and optional raw-body
//     validators that run before decoding.
//
// Pointer fields are left nil when a key is absent, so request types can tell
// "missing" from "empty":
//
//	type Submission struct {
//		Name  *string `json:"name" form:"name"`
//		Terms *bool   `json:"terms" form:"terms"`
//	}
//
// Both binders return ErrBinderNotApplicable for requests without a body; the
// handler package skips such binders, so a single handler can render the empty
// page on GET and process the submission on POST.
//
// # Errors
//
//   - ErrMissingContentType, ErrUnsupportedMediaType: wrong or missing Content-Type
//   - ErrFailedToParseJSON: syntax, type or validator failure; the validator's
//     own error stays in the chain for errors.Is
//   - ErrBodyTooLarge: body above the configured limit
//   - ErrInvalidForm: form parsing or conversion failure
package binder
