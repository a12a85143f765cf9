package forms

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/binder"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/ratelimiter"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

// Service serves the primitive form, the modern form and the JSON API.
// All three judge submissions with userform.Evaluate.
type Service struct {
	cfg    Config
	schema *userform.Schema
	views  Views
	log    *slog.Logger
	limit  *ratelimiter.Limiter

	pageErrors handler.ErrorHandler[handler.Context]
	apiErrors  handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithViews overrides the default views. Nil entries keep their defaults.
func WithViews(v Views) Option {
	return func(s *Service) { s.views = v }
}

// NewService builds the module. schema checks JSON submissions before they
// are decoded; nil uses the embedded document. It panics when cfg.RateLimit
// is enabled but invalid.
func NewService(cfg Config, schema *userform.Schema, opts ...Option) *Service {
	if schema == nil {
		schema = userform.MustLoadSchema()
	}
	s := &Service{
		cfg:    cfg,
		schema: schema,
		views:  DefaultViews(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.views = s.views.withDefaults()
	if cfg.RateLimit.Enabled() {
		l, err := ratelimiter.New(cfg.RateLimit)
		if err != nil {
			panic(err)
		}
		s.limit = l
	}
	s.log = s.log.With(logger.Component("forms"))

	s.pageErrors = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage:  s.views.ErrorPage,
		ErrorToast: s.views.ErrorToast,
	})
	jsonErrors := handler.NewJSONErrorHandler(s.log)
	s.apiErrors = func(ctx handler.Context, err error) {
		jsonErrors(ctx, asMalformed(err))
	}
	return s
}

// Handle returns the module router:
//
//	GET  /                  index
//	GET  /primitive         plain form
//	POST /primitive         plain form submit, full page answer
//	GET  /modern            DataStar form
//	POST /modern            DataStar submit, SSE patches
//	POST /api/form          JSON API
//	GET  /api/openapi.yaml  submission schema
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.index,
		handler.WithErrorHandler[handler.Context, struct{}](s.pageErrors),
	))

	r.Get("/primitive", handler.Wrap(s.primitivePage,
		handler.WithErrorHandler[handler.Context, struct{}](s.pageErrors),
	))
	r.Post("/primitive", handler.Wrap(s.primitiveSubmit,
		handler.WithBinder[handler.Context, userform.Payload](binder.Form()),
		handler.WithErrorHandler[handler.Context, userform.Payload](s.pageErrors),
		handler.WithDecorators(
			timed[userform.Payload](s.log, surfacePrimitive),
			throttled[userform.Payload](s.limit, s.log, surfacePrimitive),
		),
	))

	r.Get("/modern", handler.Wrap(s.modernPage,
		handler.WithErrorHandler[handler.Context, struct{}](s.pageErrors),
	))
	r.Post("/modern", handler.Wrap(s.modernSubmit,
		handler.WithBinder[handler.Context, userform.Payload](binder.Form()),
		handler.WithErrorHandler[handler.Context, userform.Payload](s.pageErrors),
		handler.WithDecorators(
			timed[userform.Payload](s.log, surfaceModern),
			throttled[userform.Payload](s.limit, s.log, surfaceModern),
		),
	))

	r.Route("/api", func(api chi.Router) {
		api.Post("/form", handler.Wrap(s.apiSubmit,
			handler.WithBinder[handler.Context, userform.Payload](binder.JSON(
				binder.WithMaxSize(s.cfg.MaxBodySize),
				binder.WithValidator(s.schema.Check),
			)),
			handler.WithErrorHandler[handler.Context, userform.Payload](s.apiErrors),
			handler.WithDecorators(
				timed[userform.Payload](s.log, surfaceAPI),
				throttled[userform.Payload](s.limit, s.log, surfaceAPI),
			),
		))
		api.Get("/openapi.yaml", s.openapiDocument)
	})

	return r
}
