package userform

// Field names a Record entry. The string value is the wire name used in JSON
// payloads, form posts and Error Map keys.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldAge             Field = "age"
	FieldURL             Field = "url"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldTerms           Field = "terms"
)

// Fields returns every field in canonical order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldEmail,
		FieldPhone,
		FieldAge,
		FieldURL,
		FieldPassword,
		FieldConfirmPassword,
		FieldTerms,
	}
}

func (f Field) String() string { return string(f) }

// Known reports whether f is one of the eight record fields.
func (f Field) Known() bool {
	for _, known := range Fields() {
		if f == known {
			return true
		}
	}
	return false
}
