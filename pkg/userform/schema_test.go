package userform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/userform"
)

func TestLoadSchema(t *testing.T) {
	t.Parallel()

	schema, err := userform.LoadSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", schema.Version())
	assert.Contains(t, string(schema.Document()), "Submission")
}

func TestSchema_Check(t *testing.T) {
	t.Parallel()

	schema := userform.MustLoadSchema()

	tests := []struct {
		name      string
		body      string
		malformed bool
	}{
		{
			name: "complete with numeric age",
			body: `{"name":"Jane","email":"j@e.c","age":30,"url":"https://e.com","password":"x","confirmPassword":"x","terms":true}`,
		},
		{
			name: "string age without terms or phone",
			body: `{"name":"Jane","email":"j@e.c","age":"30","url":"https://e.com","password":"x","confirmPassword":"x"}`,
		},
		{
			name: "invalid values are still well formed",
			body: `{"name":"","email":"","age":"abc","url":"","password":"","confirmPassword":"","terms":false}`,
		},
		{
			name:      "missing required key",
			body:      `{"name":"Jane","email":"j@e.c","age":30,"url":"https://e.com","password":"x"}`,
			malformed: true,
		},
		{
			name:      "unknown key",
			body:      `{"name":"Jane","email":"j@e.c","age":30,"url":"https://e.com","password":"x","confirmPassword":"x","admin":true}`,
			malformed: true,
		},
		{
			name:      "terms as string",
			body:      `{"name":"Jane","email":"j@e.c","age":30,"url":"https://e.com","password":"x","confirmPassword":"x","terms":"on"}`,
			malformed: true,
		},
		{
			name:      "name as number",
			body:      `{"name":5,"email":"j@e.c","age":30,"url":"https://e.com","password":"x","confirmPassword":"x"}`,
			malformed: true,
		},
		{
			name:      "age as bool",
			body:      `{"name":"Jane","email":"j@e.c","age":true,"url":"https://e.com","password":"x","confirmPassword":"x"}`,
			malformed: true,
		},
		{
			name:      "array body",
			body:      `[]`,
			malformed: true,
		},
		{
			name:      "not json",
			body:      `name=Jane`,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := schema.Check([]byte(tt.body))
			if tt.malformed {
				assert.ErrorIs(t, err, userform.ErrMalformedRecord)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchema_Decode(t *testing.T) {
	t.Parallel()

	schema := userform.MustLoadSchema()

	rec, err := schema.Decode([]byte(`{"name":"Jane Doe","email":"jane@example.c","age":17.5,"url":"https://example.com","password":"Abcdef1!","confirmPassword":"Abcdef1!","terms":true}`))
	require.NoError(t, err)
	assert.Equal(t, "17.5", rec.Age)

	ok, errs := userform.Evaluate(rec)
	assert.False(t, ok)
	assert.Equal(t, userform.MsgAgeNotInteger, errs.Get(userform.FieldAge))

	_, err = schema.Decode([]byte(`{"name":"Jane"}`))
	assert.ErrorIs(t, err, userform.ErrMalformedRecord)
}
