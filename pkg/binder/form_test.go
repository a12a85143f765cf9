package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/binder"
)

type level string

func (l *level) UnmarshalText(b []byte) error {
	*l = level(strings.ToUpper(string(b)))
	return nil
}

type signupForm struct {
	Name     *string  `form:"name"`
	Phone    *string  `form:"phone"`
	Age      int      `form:"age"`
	Terms    *bool    `form:"terms"`
	Tags     []string `form:"tag"`
	Level    level    `form:"level"`
	Internal string   `form:"-"`
	Nickname string
}

func newFormRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/primitive", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		req := newFormRequest(url.Values{
			"name":     {"Jane Doe"},
			"age":      {"30"},
			"terms":    {"on"},
			"tag":      {"a", "b"},
			"level":    {"pro"},
			"Internal": {"x"},
			"nickname": {"jd"},
		})

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))

		require.NotNil(t, got.Name)
		assert.Equal(t, "Jane Doe", *got.Name)
		assert.Nil(t, got.Phone)
		assert.Equal(t, 30, got.Age)
		require.NotNil(t, got.Terms)
		assert.True(t, *got.Terms)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		assert.Equal(t, level("PRO"), got.Level)
		assert.Empty(t, got.Internal)
		assert.Equal(t, "jd", got.Nickname)
	})

	t.Run("empty value is present", func(t *testing.T) {
		t.Parallel()
		var got signupForm
		require.NoError(t, binder.Form()(newFormRequest(url.Values{"phone": {""}}), &got))
		require.NotNil(t, got.Phone)
		assert.Empty(t, *got.Phone)
	})

	t.Run("query string is ignored", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/primitive?name=Query", strings.NewReader("age=20"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Nil(t, got.Name)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Jane"))
		require.NoError(t, mw.WriteField("terms", "true"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/modern", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		require.NotNil(t, got.Name)
		assert.Equal(t, "Jane", *got.Name)
		assert.True(t, *got.Terms)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var got signupForm
		err := binder.Form()(newFormRequest(url.Values{"age": {"old"}}), &got)
		require.ErrorIs(t, err, binder.ErrInvalidForm)
		assert.Contains(t, err.Error(), "age")
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		var got signupForm
		err := binder.Form()(newFormRequest(url.Values{"terms": {"maybe"}}), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/primitive", strings.NewReader("name=x"))
		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrMissingContentType)
	})

	t.Run("json is unsupported", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/primitive", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("bad multipart boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/modern", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=\"bad;boundary\"")
		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("GET is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/primitive", nil)
		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		var got signupForm
		assert.ErrorIs(t, binder.Form()(newFormRequest(url.Values{}), got), binder.ErrInvalidForm)
	})
}
