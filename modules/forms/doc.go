// Package forms serves one registration form three ways: a plain HTML form
// that reloads the page, a DataStar form patched over server-sent events,
// and a JSON API. Every surface parses the submission into a
// userform.Record and judges it with userform.Evaluate, so the rules and
// messages are identical everywhere.
//
// Mount it at the root of the router:
//
//	svc := forms.NewService(cfg.Forms, userform.MustLoadSchema(), forms.WithLogger(log))
//	r.Mount("/", svc.Handle())
//
// Structural failures (missing keys, unknown keys, wrong JSON types) are
// answered with 400 ErrMalformedSubmission. Rule failures are answered with
// the Error Map: inline on the HTML surfaces, as a 422 validation_error body
// on the API.
//
// With Config.RateLimit enabled, submissions on every surface share one token
// bucket per client address (pkg/clientip) and an exhausted bucket is
// answered with 429 ErrTooManySubmissions.
package forms
