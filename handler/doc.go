// Package handler provides typed HTTP handlers with pluggable binders and
// responses for HTML pages, DataStar SSE patches and JSON APIs.
//
// A handler receives a Context and a request struct filled by binders, and
// returns a Response:
//
//	func submit(ctx handler.Context, req userform.Payload) handler.Response {
//		rec, err := req.Record()
//		if err != nil {
//			return handler.Error(err)
//		}
//		if ok, errs := userform.Evaluate(rec); !ok {
//			return handler.JSONError(handler.ValidationErrorFrom(errs.Details()))
//		}
//		return handler.JSON(rec.User())
//	}
//
//	r.Post("/api/form", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, userform.Payload](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, userform.Payload](handler.NewJSONErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(v)                   // {"data": v}
//	handler.JSONError(err)            // {"error": {...}} with a status derived from err
//	handler.Templ(component, opts...) // HTML, or an SSE element patch for DataStar requests
//	handler.SSE(fn)                   // several patches and signal updates in one DataStar response
//	handler.Error(err)                // defer to the error handler
//
// # Errors
//
// Binder failures reach the error handler wrapped in an HTTPError
// (ErrBadRequest, ErrUnsupportedMediaType or ErrRequestTooLarge) with the
// binder's error still in the chain. ValidationError renders as 422 with
// per-field details. NewErrorHandler serves HTML surfaces (error page or
// DataStar toast), NewJSONErrorHandler serves APIs.
package handler
