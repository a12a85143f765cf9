// Package userform holds the registration form's field validators and the
// submission gate shared by every surface that accepts a submission: the plain
// HTML form, the DataStar form, the JSON API and the formctl client.
//
// Processing has two phases. A submission is first parsed into a Record; a
// missing required key or a wrongly typed JSON value is a structural failure
// reported as ErrMalformedRecord. The Record is then judged field by field:
//
//	ok, errs := userform.Evaluate(rec)
//	if !ok {
//	    for _, f := range errs.Fields() {
//	        fmt.Println(f, errs.Get(f))
//	    }
//	}
//
// Evaluate always checks all eight fields and never fails on user input.
// Each field validator stops at its first failing rule, so every failing field
// carries exactly one message.
//
// JSON submissions can be checked against the embedded OpenAPI schema first:
//
//	schema := userform.MustLoadSchema()
//	rec, err := schema.Decode(body)
package userform
