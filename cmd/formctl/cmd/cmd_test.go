package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/modules/forms"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/requestid"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

// scriptedPrompter answers by prompt message. Answers are run through the
// prompt's validator so tests see what a user would be told.
type scriptedPrompter struct {
	answers  map[string]string
	terms    bool
	rejected map[string]string
}

func (s *scriptedPrompter) answer(cfg inputConfig) (string, error) {
	a, ok := s.answers[cfg.Message]
	if !ok {
		return "", ErrAborted
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(a); err != nil {
			s.rejected[cfg.Message] = err.Error()
			return "", ErrAborted
		}
	}
	return a, nil
}

func (s *scriptedPrompter) Input(_ context.Context, cfg inputConfig) (string, error) {
	return s.answer(cfg)
}

func (s *scriptedPrompter) Password(_ context.Context, cfg inputConfig) (string, error) {
	return s.answer(cfg)
}

func (s *scriptedPrompter) Confirm(context.Context, string) (bool, error) {
	return s.terms, nil
}

func validAnswers() map[string]string {
	return map[string]string{
		"Name:":             " Jane Doe ",
		"Email:":            "jane@example.c",
		"Phone:":            "",
		"Age:":              "30",
		"Website:":          "https://example.com",
		"Password:":         "Abcdef1!",
		"Confirm password:": "Abcdef1!",
	}
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(requestid.Middleware(forms.NewService(forms.Config{}, nil).Handle()))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, endpoint string, p prompter, args ...string) (string, error) {
	t.Helper()
	if p == nil {
		p = &scriptedPrompter{}
	}
	root := newRootCmd(Config{Endpoint: endpoint, Timeout: 5 * time.Second}, logger.Discard(), p)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "http://localhost:1", nil, "validate", writeFile(t, "rec.yaml", validYAML))
		require.NoError(t, err)
		assert.Equal(t, "Valid\n", out)
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "rec.json", `{"name":"J","email":"nope","age":"17","url":"https://example.com","password":"Abcdef1!","confirmPassword":"Abcdef1?"}`)

		out, err := run(t, "http://localhost:1", nil, "validate", path)
		require.ErrorIs(t, err, ErrRejected)

		assert.Contains(t, out, "Rejected\n")
		assert.Contains(t, out, "  name: "+userform.MsgNameTooShort+"\n")
		assert.Contains(t, out, "  email: "+userform.MsgEmailInvalid+"\n")
		assert.Contains(t, out, "  age: "+userform.MsgAgeRange+"\n")
		assert.Contains(t, out, "  confirmPassword: "+userform.MsgPasswordMatch+"\n")
		assert.Contains(t, out, "  terms: "+userform.MsgTerms+"\n")
		assert.NotContains(t, out, "password: ")
		assert.NotContains(t, out, "url:")
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "http://localhost:1", nil, "validate", writeFile(t, "rec.json", `{"name":"Jane"}`))
		assert.ErrorIs(t, err, userform.ErrMalformedRecord)
	})

	t.Run("needs a file", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "http://localhost:1", nil, "validate")
		assert.Error(t, err)
	})
}

func TestSubmitCmd(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, srv.URL, nil, "submit", writeFile(t, "rec.yaml", validYAML))
		require.NoError(t, err)

		assert.Contains(t, out, "Accepted\n")
		assert.Contains(t, out, "name: Jane Doe\n")
		assert.Contains(t, out, "email: j***@example.c\n")
		assert.Contains(t, out, "phone: ********0958\n")
		assert.Contains(t, out, "age: 30\n")
		assert.NotContains(t, out, "Abcdef1!")
	})

	t.Run("locally rejected is never sent", func(t *testing.T) {
		t.Parallel()
		var hits atomic.Int32
		stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(stub.Close)

		path := writeFile(t, "rec.toml", validTOML+"phone = \"abc\"\n")
		out, err := run(t, stub.URL, nil, "submit", path)

		require.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, out, "Rejected\n")
		assert.Contains(t, out, "phone: "+userform.MsgPhoneInvalid)
		assert.Zero(t, hits.Load())
	})

	t.Run("server rejection", func(t *testing.T) {
		t.Parallel()
		stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":{"code":"validation_error","message":"validation failed","details":{"email":["Email is already taken"]}}}`))
		}))
		t.Cleanup(stub.Close)

		out, err := run(t, stub.URL, nil, "submit", writeFile(t, "rec.json", validJSON))
		require.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, out, "Rejected by server\n")
		assert.Contains(t, out, "email: Email is already taken\n")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()
		stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(stub.Close)

		_, err := run(t, stub.URL, nil, "submit", writeFile(t, "rec.json", validJSON))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrRejected))
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, srv.URL, nil, "--endpoint", "localhost", "submit", writeFile(t, "rec.json", validJSON))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrRejected))
	})
}

func TestPromptCmd(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		p := &scriptedPrompter{answers: validAnswers(), terms: true, rejected: map[string]string{}}

		out, err := run(t, srv.URL, p, "prompt")
		require.NoError(t, err)
		assert.Empty(t, p.rejected)
		assert.Contains(t, out, "Accepted\n")
		assert.Contains(t, out, "name: Jane Doe\n")
		assert.NotContains(t, out, "phone:")
	})

	t.Run("answers are validated as typed", func(t *testing.T) {
		t.Parallel()
		answers := validAnswers()
		answers["Age:"] = "17.5"
		p := &scriptedPrompter{answers: answers, terms: true, rejected: map[string]string{}}

		_, err := run(t, srv.URL, p, "prompt")
		require.ErrorIs(t, err, ErrAborted)
		assert.Equal(t, map[string]string{"Age:": userform.MsgAgeNotInteger}, p.rejected)
	})

	t.Run("confirmation compares with the entered password", func(t *testing.T) {
		t.Parallel()
		answers := validAnswers()
		answers["Confirm password:"] = "Abcdef1?"
		p := &scriptedPrompter{answers: answers, terms: true, rejected: map[string]string{}}

		_, err := run(t, srv.URL, p, "prompt")
		require.ErrorIs(t, err, ErrAborted)
		assert.Equal(t, map[string]string{"Confirm password:": userform.MsgPasswordMatch}, p.rejected)
	})

	t.Run("declined terms", func(t *testing.T) {
		t.Parallel()
		p := &scriptedPrompter{answers: validAnswers(), terms: false, rejected: map[string]string{}}

		out, err := run(t, srv.URL, p, "prompt")
		require.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, out, "terms: "+userform.MsgTerms)
	})
}
