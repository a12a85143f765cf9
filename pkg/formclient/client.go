package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/requestid"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

const (
	submitPath      = "/api/form"
	maxResponseSize = 1 << 20
)

// Client submits records to the forms API after judging them locally.
type Client struct {
	endpoint string
	http     *http.Client
	log      *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request, including reading the answer.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for the server at endpoint, e.g. "http://localhost:8080".
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidEndpoint, endpoint)
	}

	c := &Client{
		endpoint: strings.TrimRight(u.String(), "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("formclient"))
	return c, nil
}

type envelope struct {
	Data  *userform.User       `json:"data"`
	Error *handler.ErrorDetail `json:"error"`
}

// Submit normalizes rec the way the server parses it, judges it with the same
// gate and sends it only when it passes. The server stays the authority: its 422 answer is returned as a
// *RejectedError with Remote set.
//
// A request id stored in ctx with requestid.WithContext is forwarded in the
// X-Request-ID header.
func (c *Client) Submit(ctx context.Context, rec userform.Record) (userform.User, error) {
	rec = rec.Normalize()
	if accepted, errs := userform.Evaluate(rec); !accepted {
		return userform.User{}, &RejectedError{Errors: errs}
	}

	body, err := json.Marshal(userform.PayloadFromRecord(rec))
	if err != nil {
		return userform.User{}, fmt.Errorf("formclient: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+submitPath, bytes.NewReader(body))
	if err != nil {
		return userform.User{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "submit failed", logger.Error(err))
		return userform.User{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "submit answered",
		logger.Status(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)
	return decodeAnswer(resp)
}

func decodeAnswer(resp *http.Response) (userform.User, error) {
	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&env); err != nil {
		return userform.User{}, fmt.Errorf("%w: status %d with unreadable body: %w", ErrTransport, resp.StatusCode, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if env.Data == nil {
			return userform.User{}, fmt.Errorf("%w: accepted answer without data", ErrTransport)
		}
		return *env.Data, nil

	case http.StatusUnprocessableEntity:
		if env.Error != nil {
			if errs := userform.ErrorsFromDetails(env.Error.Details); !errs.IsEmpty() {
				return userform.User{}, &RejectedError{Errors: errs, Remote: true}
			}
		}
		return userform.User{}, fmt.Errorf("%w: rejection without field errors", ErrTransport)

	case http.StatusBadRequest:
		msg := "bad request"
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return userform.User{}, fmt.Errorf("%w: %s", ErrMalformed, msg)

	default:
		return userform.User{}, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}
}
