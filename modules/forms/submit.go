package forms

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/modules/forms/views"
	"github.com/dmitrymomot/formlab/pkg/clientip"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/ratelimiter"
	"github.com/dmitrymomot/formlab/pkg/sanitizer"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

const (
	surfacePrimitive = "primitive"
	surfaceModern    = "modern"
	surfaceAPI       = "api"
)

// judge runs the submission gate. A rejected record returns its Error Map; an
// accepted one goes through the echo step and returns the echoed user. err is
// only set when the echo step fails.
func (s *Service) judge(ctx context.Context, surface string, rec userform.Record) (userform.User, userform.Errors, error) {
	accepted, errs := userform.Evaluate(rec)
	if !accepted {
		fields := make([]string, 0, len(errs))
		for _, f := range errs.Fields() {
			fields = append(fields, f.String())
		}
		s.log.WarnContext(ctx, "submission rejected",
			logger.Surface(surface),
			logger.Fields(fields...),
		)
		return userform.User{}, errs, nil
	}

	user, err := s.echo(ctx, rec)
	if err != nil {
		return userform.User{}, nil, err
	}

	attrs := []slog.Attr{
		logger.Surface(surface),
		slog.String("email", sanitizer.MaskEmail(user.Email)),
	}
	if user.Phone != "" {
		attrs = append(attrs, slog.String("phone", sanitizer.MaskPhone(user.Phone)))
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "submission accepted", attrs...)
	return user, userform.NewErrors(), nil
}

// echo stands in for the upstream user service: it waits MockLatency and
// answers with the public part of the record.
func (s *Service) echo(ctx context.Context, rec userform.Record) (userform.User, error) {
	if s.cfg.MockLatency > 0 {
		timer := time.NewTimer(s.cfg.MockLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return userform.User{}, fmt.Errorf("%w: echo: %w", handler.ErrServiceUnavailable, ctx.Err())
		case <-timer.C:
		}
	}
	return rec.User(), nil
}

// formState judges rec for an HTML surface. Submitted values are kept so the
// page shows what the user typed.
func (s *Service) formState(ctx context.Context, surface string, rec userform.Record) (views.FormState, error) {
	user, errs, err := s.judge(ctx, surface, rec)
	if err != nil {
		return views.FormState{}, err
	}
	state := views.NewFormState()
	state.Values = rec
	state.Errors = errs
	if errs.IsEmpty() {
		state.User = &user
	}
	return state, nil
}

// timed logs how long a submission handler took, excluding rendering.
func timed[R any](log *slog.Logger, surface string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "submission handled",
				logger.Surface(surface),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

// throttled answers ErrTooManySubmissions once the client address has used up
// its bucket. A nil limiter lets everything through.
func throttled[R any](l *ratelimiter.Limiter, log *slog.Logger, surface string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		if l == nil {
			return next
		}
		return func(ctx handler.Context, req R) handler.Response {
			key := clientip.FromContext(ctx)
			if key == "" {
				key = clientip.Resolve(ctx.Request())
			}

			res := l.Allow(key)
			h := ctx.ResponseWriter().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if !res.Allowed {
				retry := int(math.Ceil(res.RetryAfter(time.Now()).Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(retry, 1)))
				log.WarnContext(ctx, "submission throttled", logger.Surface(surface))
				return handler.Error(ErrTooManySubmissions)
			}
			return next(ctx, req)
		}
	}
}
