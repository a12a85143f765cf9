package userform

// Outcome is the result of validating one field: Valid, or Invalid with a
// human-readable reason. The zero value is Valid.
type Outcome struct {
	reason string
}

// Valid returns the accepting outcome.
func Valid() Outcome {
	return Outcome{}
}

// Invalid returns a rejecting outcome. An empty reason is a programming error.
func Invalid(reason string) Outcome {
	if reason == "" {
		panic("userform: Invalid requires a non-empty reason")
	}
	return Outcome{reason: reason}
}

func (o Outcome) IsValid() bool { return o.reason == "" }

// Reason returns the rejection message, or "" for a valid outcome.
func (o Outcome) Reason() string { return o.reason }

func (o Outcome) String() string {
	if o.IsValid() {
		return "valid"
	}
	return "invalid: " + o.reason
}
