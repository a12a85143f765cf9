package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formlab/pkg/userform"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a record file without sending it",
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

			out := newPrinter(cmd.OutOrStdout())
			if accepted, errs := userform.Evaluate(rec); !accepted {
				opts.log.DebugContext(cmd.Context(), "record rejected", fieldNames(errs))
				out.rejected(errs, false)
				return ErrRejected
			}
			out.valid()
			return nil
		},
	}
}
