package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mongotypes/pkg/logger"
	"github.com/dmitrymomot/mongotypes/pkg/odm"
	"github.com/dmitrymomot/mongotypes/pkg/validator"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <value>",
		Short: "Check that a value is a valid ObjectID",
		Long: `Check that a value is a valid ObjectID and print its canonical
lowercase form. Exits non-zero when the value is not 24 hex characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(validator.ValidObjectID("value", args[0])); err != nil {
				opts.log.Debug("check failed", logger.ObjectID(args[0]), logger.Rule("objectid"), logger.Error(err))
				return report(cmd, opts, err)
			}
			id, err := odm.ObjectIDFromHex(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.Hex())
			return nil
		},
	}
}
