package userform

import "github.com/dmitrymomot/formlab/pkg/sanitizer"

// Record is one submission attempt: the raw value of every field.
// It is a plain value; copies never share state.
type Record struct {
	Name            string
	Email           string
	Phone           string
	Age             string
	URL             string
	Password        string
	ConfirmPassword string
	Terms           bool
}

// NewRecord returns an empty record, as shown on a freshly loaded form.
func NewRecord() Record {
	return Record{}
}

var trimText = sanitizer.Compose(sanitizer.Trim)

// Normalize removes surrounding whitespace from every text field except the
// two passwords, which are compared byte for byte. Payload.Record applies it
// to every parsed submission, so anything judging a Record before it is sent
// must normalize it first to reach the server's verdict.
func (r Record) Normalize() Record {
	r.Name = trimText(r.Name)
	r.Email = trimText(r.Email)
	r.Phone = trimText(r.Phone)
	r.Age = trimText(r.Age)
	r.URL = trimText(r.URL)
	return r
}

// Value returns the raw textual value of field. Terms is rendered as "on" or "".
func (r Record) Value(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldAge:
		return r.Age
	case FieldURL:
		return r.URL
	case FieldPassword:
		return r.Password
	case FieldConfirmPassword:
		return r.ConfirmPassword
	case FieldTerms:
		if r.Terms {
			return "on"
		}
	}
	return ""
}

// User is the public part of an accepted record, safe to echo back to a caller.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Age   int64  `json:"age"`
	URL   string `json:"url"`
}

// User returns the echoable part of the record. Age is 0 when it does not parse.
func (r Record) User() User {
	age, _ := parseAge(r.Age)
	return User{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Age:   age,
		URL:   r.URL,
	}
}
