package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formlab/modules/forms"
	"github.com/dmitrymomot/formlab/pkg/clientip"
	"github.com/dmitrymomot/formlab/pkg/config"
	"github.com/dmitrymomot/formlab/pkg/environment"
	"github.com/dmitrymomot/formlab/pkg/httpserver"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/requestid"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

type Config struct {
	AppName  string                  `env:"APP_NAME" envDefault:"formlab"`
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`

	// TrustedProxyHeaders lists the client address headers set by the
	// reverse proxy in front of the server, e.g. "X-Forwarded-For".
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`

	Forms forms.Config
	HTTP  httpserver.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()
	schema, err := userform.LoadSchema(ctx)
	if err != nil {
		log.Error("failed to load submission schema", logger.Error(err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustedProxyHeaders...),
		environment.Middleware(cfg.Env),
		middleware.Recoverer,
	)
	r.Get("/health", httpserver.HealthCheckHandler(log, httpserver.Check{
		Name: "schema",
		Fn: func(ctx context.Context) error {
			_, err := userform.LoadSchema(ctx)
			return err
		},
	}))
	r.Mount("/", forms.NewService(cfg.Forms, schema, forms.WithLogger(log)).Handle())

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
