package userform

// Evaluate runs every field validator against rec and aggregates the result.
// All fields are checked in one pass, so errs reports every problem at once.
// accepted is true iff errs is empty.
func Evaluate(rec Record) (accepted bool, errs Errors) {
	errs = NewErrors()
	for _, f := range Fields() {
		if o := Validate(f, rec); !o.IsValid() {
			errs.set(f, o.Reason())
		}
	}
	return errs.IsEmpty(), errs
}

// Check is Evaluate for callers that prefer an error value.
// It returns nil when rec is accepted and the Errors otherwise.
func Check(rec Record) error {
	if ok, errs := Evaluate(rec); !ok {
		return errs
	}
	return nil
}
