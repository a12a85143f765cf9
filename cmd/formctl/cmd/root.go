package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formlab/pkg/config"
	"github.com/dmitrymomot/formlab/pkg/formclient"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/requestid"
)

// ErrRejected is returned when a record fails validation. The Error Map has
// already been printed; main only sets the exit status.
var ErrRejected = errors.New("submission rejected")

// Config holds the environment defaults of the persistent flags.
type Config struct {
	Endpoint string        `env:"FORMCTL_ENDPOINT" envDefault:"http://localhost:8080"`
	Timeout  time.Duration `env:"FORMCTL_TIMEOUT" envDefault:"10s"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"warn"`
}

type options struct {
	endpoint string
	timeout  time.Duration
	log      *slog.Logger
	prompter prompter
}

// Execute runs formctl with os.Args.
func Execute(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(os.Stderr),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	return newRootCmd(cfg, log, surveyPrompter{}).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Flags default to cfg.
func newRootCmd(cfg Config, log *slog.Logger, p prompter) *cobra.Command {
	opts := &options{log: log, prompter: p}

	root := &cobra.Command{
		Use:   "formctl",
		Short: "Validate and submit registration records",
		Long: `formctl checks registration records with the same rules as the formlab
server and submits them to its JSON API.

Record files are JSON, YAML or TOML, chosen by extension:

  name: Jane Doe
  email: jane@example.c
  age: 30
  url: https://example.com
  password: Abcdef1!
  confirmPassword: Abcdef1!
  terms: true`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.endpoint, "endpoint", cfg.Endpoint, "formlab server URL (env FORMCTL_ENDPOINT)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Timeout, "request timeout (env FORMCTL_TIMEOUT)")

	root.AddCommand(
		newValidateCmd(opts),
		newSubmitCmd(opts),
		newPromptCmd(opts),
	)
	return root
}

func (o *options) client() (*formclient.Client, error) {
	return formclient.New(o.endpoint,
		formclient.WithTimeout(o.timeout),
		formclient.WithLogger(o.log),
	)
}
