package userform

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Scalar is a raw field value that may arrive as a JSON string or a JSON number.
// Numbers keep their literal text so "17.5" and 17.5 validate identically.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return malformed("age: %v", err)
		}
		*s = Scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return malformed("age must be a number or a string")
	}
	*s = Scalar(n.String())
	return nil
}

// Payload is the wire shape of a submission. Pointer fields distinguish a
// missing key from an empty value.
type Payload struct {
	Name            *string `json:"name" form:"name"`
	Email           *string `json:"email" form:"email"`
	Phone           *string `json:"phone,omitempty" form:"phone"`
	Age             *Scalar `json:"age" form:"age"`
	URL             *string `json:"url" form:"url"`
	Password        *string `json:"password" form:"password"`
	ConfirmPassword *string `json:"confirmPassword" form:"confirmPassword"`
	Terms           *bool   `json:"terms,omitempty" form:"terms"`
}

// Record converts the payload into a Record. Name, email, age, url, password
// and confirmPassword are required keys; phone may be omitted and an absent
// terms key means the terms were not accepted. The result is normalized with
// Record.Normalize.
func (p Payload) Record() (Record, error) {
	var missing []string
	text := func(f Field, v *string) string {
		if v == nil {
			missing = append(missing, f.String())
			return ""
		}
		return *v
	}

	rec := Record{
		Name:            text(FieldName, p.Name),
		Email:           text(FieldEmail, p.Email),
		URL:             text(FieldURL, p.URL),
		Password:        text(FieldPassword, p.Password),
		ConfirmPassword: text(FieldConfirmPassword, p.ConfirmPassword),
	}
	if p.Age == nil {
		missing = append(missing, FieldAge.String())
	} else {
		rec.Age = string(*p.Age)
	}
	if p.Phone != nil {
		rec.Phone = *p.Phone
	}
	if p.Terms != nil {
		rec.Terms = *p.Terms
	}

	if len(missing) > 0 {
		return Record{}, malformed("missing required fields: %s", strings.Join(missing, ", "))
	}
	return rec.Normalize(), nil
}

// PayloadFromRecord builds the wire form of rec, as sent by clients.
func PayloadFromRecord(rec Record) Payload {
	age := Scalar(rec.Age)
	terms := rec.Terms
	p := Payload{
		Name:            &rec.Name,
		Email:           &rec.Email,
		Age:             &age,
		URL:             &rec.URL,
		Password:        &rec.Password,
		ConfirmPassword: &rec.ConfirmPassword,
		Terms:           &terms,
	}
	if rec.Phone != "" {
		p.Phone = &rec.Phone
	}
	return p
}

// MarshalJSON writes numeric values as JSON numbers and anything else as a
// JSON string.
func (s Scalar) MarshalJSON() ([]byte, error) {
	raw := []byte(s)
	if len(raw) > 0 && raw[0] != '"' && json.Valid(raw) {
		var n json.Number
		if json.Unmarshal(raw, &n) == nil {
			return raw, nil
		}
	}
	return json.Marshal(string(s))
}
