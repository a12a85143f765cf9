package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{"request header", map[string]string{"Datastar-Request": "true"}, "", true},
		{"SSE accept header", map[string]string{"Accept": "text/event-stream"}, "", true},
		{"mixed accept header", map[string]string{"Accept": "text/html, text/event-stream"}, "", true},
		{"signals query", nil, `?datastar={"submitting":true}`, true},
		{"plain form post", map[string]string{"Content-Type": "application/x-www-form-urlencoded"}, "", false},
		{"html accept", map[string]string{"Accept": "text/html"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/modern"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, handler.IsDataStar(req))
		})
	}
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain HTML", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Templ(textComponent("<form></form>")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<form></form>", w.Body.String())
	})

	t.Run("status for HTML", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.TemplWithStatus(http.StatusBadRequest, textComponent("bad")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DataStar patch", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		err := handler.Templ(textComponent(`<div id="result">ok</div>`), handler.WithTarget("#result")).Render(w, req)

		require.NoError(t, err)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
		assert.Contains(t, w.Body.String(), `<div id="result">ok</div>`)
		assert.Contains(t, w.Body.String(), "#result")
	})
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("requires DataStar request", func(t *testing.T) {
		t.Parallel()
		called := false
		err := handler.SSE(func(handler.StreamContext) error {
			called = true
			return nil
		}).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		assert.ErrorIs(t, err, handler.ErrBadRequest)
		assert.ErrorIs(t, err, handler.ErrSSENotInitialized)
		assert.False(t, called)
	})

	t.Run("sends components and signals", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Datastar-Request", "true")
		w := httptest.NewRecorder()

		err := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendMultiple(
				handler.Patch(textComponent(`<form id="form">f</form>`)),
				handler.Patch(textComponent(`<p>card</p>`), handler.WithTarget("#result"), handler.WithPatchMode(handler.PatchInner)),
			); err != nil {
				return err
			}
			return stream.SendSignals(map[string]any{"submitting": false})
		}).Render(w, req)

		require.NoError(t, err)
		body := w.Body.String()
		assert.Contains(t, body, `<form id="form">f</form>`)
		assert.Contains(t, body, "<p>card</p>")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"submitting":false`)
	})

	t.Run("handler error is returned", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Accept", "text/event-stream")

		err := handler.SSE(func(handler.StreamContext) error { return assert.AnError }).Render(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
