package forms_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/modules/forms"
	"github.com/dmitrymomot/formlab/pkg/clientip"
	"github.com/dmitrymomot/formlab/pkg/ratelimiter"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

func newServer(t *testing.T, cfg forms.Config) (http.Handler, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return forms.NewService(cfg, userform.MustLoadSchema(), forms.WithLogger(log)).Handle(), logs
}

func validForm() url.Values {
	return url.Values{
		"name":            {"Jane Doe"},
		"email":           {"jane@example.c"},
		"phone":           {"+1 555 123 4567"},
		"age":             {"30"},
		"url":             {"https://example.com"},
		"password":        {"Abcdef1!"},
		"confirmPassword": {"Abcdef1!"},
		"terms":           {"on"},
	}
}

func validJSON() map[string]any {
	return map[string]any{
		"name":            "Jane Doe",
		"email":           "jane@example.c",
		"age":             30,
		"url":             "https://example.com",
		"password":        "Abcdef1!",
		"confirmPassword": "Abcdef1!",
		"terms":           true,
	}
}

func postForm(h http.Handler, path string, values url.Values, datastar bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if datastar {
		req.Header.Set("Datastar-Request", "true")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, h http.Handler, body any) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()
	raw, ok := body.(string)
	if !ok {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		raw = string(b)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/form", strings.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp handler.JSONResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestPages(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t, forms.Config{})

	for _, path := range []string{"/", "/primitive", "/modern"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
		})
	}
}

func TestPrimitiveSubmit(t *testing.T) {
	t.Parallel()

	t.Run("accepted shows user card", func(t *testing.T) {
		t.Parallel()
		h, logs := newServer(t, forms.Config{})

		w := postForm(h, "/primitive", validForm(), false)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User info")
		assert.Contains(t, w.Body.String(), "<dd>Jane Doe</dd>")
		assert.NotContains(t, w.Body.String(), "Abcdef1!")
		assert.Contains(t, logs.String(), "submission accepted")
		assert.Contains(t, logs.String(), `"email":"j***@example.c"`)
		assert.NotContains(t, logs.String(), "jane@example.c\"")
	})

	t.Run("rejected shows inline errors", func(t *testing.T) {
		t.Parallel()
		h, logs := newServer(t, forms.Config{})
		values := validForm()
		values.Set("age", "17")
		values.Del("terms")

		w := postForm(h, "/primitive", values, false)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, userform.MsgAgeRange)
		assert.Contains(t, body, userform.MsgTerms)
		assert.Contains(t, body, `value="Jane Doe"`)
		assert.NotContains(t, body, "User info")
		assert.Contains(t, logs.String(), `"fields":["age","terms"]`)
		assert.NotContains(t, logs.String(), "Jane Doe")
	})

	t.Run("missing required field is malformed", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		values := validForm()
		values.Del("age")

		w := postForm(h, "/primitive", values, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>400</h1>")
	})
}

func TestModernSubmit(t *testing.T) {
	t.Parallel()

	t.Run("DataStar accepted patches form and card", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})

		w := postForm(h, "/modern", validForm(), true)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `id="modern-form"`)
		assert.Contains(t, body, "User info")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"submitting":false`)
	})

	t.Run("DataStar rejected patches errors and clears card", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		values := validForm()
		values.Set("confirmPassword", "Abcdef1?")

		w := postForm(h, "/modern", values, true)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, userform.MsgPasswordMatch)
		assert.Contains(t, body, `id="result"`)
		assert.NotContains(t, body, "User info")
	})

	t.Run("DataStar malformed gets toast", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		values := validForm()
		values.Del("name")

		w := postForm(h, "/modern", values, true)

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "toast-warning")
		assert.Contains(t, body, "#toast-container")
	})

	t.Run("without DataStar renders full page", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		values := validForm()
		values.Set("email", "")

		w := postForm(h, "/modern", values, false)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, w.Body.String(), userform.MsgEmailEmpty)
	})
}

func TestAPISubmit(t *testing.T) {
	t.Parallel()

	t.Run("accepted echoes user", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})

		w, resp := postJSON(t, h, validJSON())

		require.Equal(t, http.StatusOK, w.Code)
		require.Nil(t, resp.Error)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", data["name"])
		assert.EqualValues(t, 30, data["age"])
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("age as string", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		body := validJSON()
		body["age"] = "42"

		w, _ := postJSON(t, h, body)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejected lists exactly the failing fields", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		body := validJSON()
		body["name"] = "J"
		body["url"] = "example.com"

		w, resp := postJSON(t, h, body)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_error", resp.Error.Code)
		assert.Equal(t, map[string][]string{
			"name": {userform.MsgNameTooShort},
			"url":  {userform.MsgURLInvalid},
		}, resp.Error.Details)
		assert.Equal(t, map[string]string{
			"name": userform.MsgNameTooShort,
			"url":  userform.MsgURLInvalid,
		}, resp.Error.Errors)
	})

	structural := map[string]any{
		"missing key":   func() map[string]any { b := validJSON(); delete(b, "password"); return b }(),
		"unknown key":   func() map[string]any { b := validJSON(); b["admin"] = true; return b }(),
		"wrong type":    func() map[string]any { b := validJSON(); b["terms"] = "yes"; return b }(),
		"not an object": "[1,2,3]",
		"invalid JSON":  `{"name":`,
	}
	for name, body := range structural {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h, _ := newServer(t, forms.Config{})

			w, resp := postJSON(t, h, body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "malformed_submission", resp.Error.Code)
			assert.Empty(t, resp.Error.Details)
		})
	}

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})
		req := httptest.NewRequest(http.MethodPost, "/api/form", strings.NewReader("name=x"))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("echo step honours cancellation", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{MockLatency: time.Hour})

		raw, err := json.Marshal(validJSON())
		require.NoError(t, err)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodPost, "/api/form", bytes.NewReader(raw)).WithContext(ctx)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "service_unavailable")
	})
}

func TestOpenAPIDocument(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t, forms.Config{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.Equal(t, "1.0.0", w.Header().Get("X-API-Version"))
	assert.Contains(t, w.Body.String(), "Submission:")
}

func TestSubmitThrottle(t *testing.T) {
	t.Parallel()

	cfg := forms.Config{RateLimit: ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour}}

	t.Run("api", func(t *testing.T) {
		t.Parallel()
		h, logs := newServer(t, cfg)

		for range 2 {
			w, _ := postJSON(t, h, validJSON())
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		}

		w, resp := postJSON(t, h, validJSON())
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "too_many_submissions", resp.Error.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Contains(t, logs.String(), "submission throttled")
	})

	t.Run("buckets are per client", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, cfg)

		for range 2 {
			require.Equal(t, http.StatusOK, postForm(h, "/primitive", validForm(), false).Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, postForm(h, "/primitive", validForm(), false).Code)

		req := httptest.NewRequest(http.MethodPost, "/primitive", strings.NewReader(validForm().Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "198.51.100.20:4000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("spoofed proxy headers share one bucket", func(t *testing.T) {
		t.Parallel()
		inner, _ := newServer(t, cfg)
		h := clientip.Middleware()(inner)

		post := func(forwarded string) int {
			req := httptest.NewRequest(http.MethodPost, "/primitive", strings.NewReader(validForm().Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("X-Forwarded-For", forwarded)
			req.Header.Set("CF-Connecting-IP", forwarded)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w.Code
		}

		require.Equal(t, http.StatusOK, post("198.51.100.1"))
		require.Equal(t, http.StatusOK, post("198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, post("198.51.100.3"))
	})

	t.Run("disabled by default", func(t *testing.T) {
		t.Parallel()
		h, _ := newServer(t, forms.Config{})

		for range 5 {
			w, _ := postJSON(t, h, validJSON())
			require.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
		}
	})
}
