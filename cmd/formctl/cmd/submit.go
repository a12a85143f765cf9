package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formlab/pkg/formclient"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/requestid"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

func newSubmitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "submit FILE",
		Short: "Check a record file and send it to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := userform.LoadSchema(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := loadRecord(schema, args[0])
			if err != nil {
				return err
			}
			return opts.submit(cmd.Context(), newPrinter(cmd.OutOrStdout()), rec)
		},
	}
}

// submit sends rec under a fresh request id and prints the outcome.
func (o *options) submit(ctx context.Context, out printer, rec userform.Record) error {
	client, err := o.client()
	if err != nil {
		return err
	}

	ctx = requestid.WithContext(ctx, requestid.New())
	user, err := client.Submit(ctx, rec)

	var rejected *formclient.RejectedError
	switch {
	case err == nil:
		o.log.InfoContext(ctx, "submission accepted")
		out.accepted(user)
		return nil
	case errors.As(err, &rejected):
		o.log.DebugContext(ctx, "submission rejected",
			fieldNames(rejected.Errors),
			slog.Bool("remote", rejected.Remote),
		)
		out.rejected(rejected.Errors, rejected.Remote)
		return ErrRejected
	default:
		o.log.ErrorContext(ctx, "submission failed", logger.Error(err))
		return err
	}
}

func fieldNames(errs userform.Errors) slog.Attr {
	fields := errs.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return logger.Fields(names...)
}
