package views

import "github.com/dmitrymomot/formlab/pkg/userform"

// FormState is everything a form template needs: the values to show, the
// Error Map of the last submit and the echoed user once accepted.
type FormState struct {
	Values userform.Record
	Errors userform.Errors
	User   *userform.User
}

// NewFormState returns the state of a freshly loaded form. Each call returns
// new values, so states never share an Error Map.
func NewFormState() FormState {
	return FormState{
		Values: userform.NewRecord(),
		Errors: userform.NewErrors(),
	}
}

// Rejected reports whether the last submit failed validation.
func (s FormState) Rejected() bool {
	return !s.Errors.IsEmpty()
}

// Input is one text-like form control.
type Input struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Error    string
	Optional bool
}

var inputs = []struct {
	field userform.Field
	label string
	typ   string
}{
	{userform.FieldName, "Name", "text"},
	{userform.FieldEmail, "Email", "email"},
	{userform.FieldPhone, "Phone", "tel"},
	{userform.FieldAge, "Age", "text"},
	{userform.FieldURL, "Website URL", "url"},
	{userform.FieldPassword, "Password", "password"},
	{userform.FieldConfirmPassword, "Confirm password", "password"},
}

// Inputs lists the text controls in canonical field order. Password values
// are never rendered back into the page.
func (s FormState) Inputs() []Input {
	out := make([]Input, 0, len(inputs))
	for _, in := range inputs {
		value := s.Values.Value(in.field)
		if in.typ == "password" {
			value = ""
		}
		out = append(out, Input{
			Name:     in.field.String(),
			Label:    in.label,
			Type:     in.typ,
			Value:    value,
			Error:    s.Errors.Get(in.field),
			Optional: in.field == userform.FieldPhone,
		})
	}
	return out
}

func (s FormState) TermsError() string {
	return s.Errors.Get(userform.FieldTerms)
}
