package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongotypes/pkg/logger"
	"github.com/dmitrymomot/mongotypes/pkg/validator"
)

func newSameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "same <subject> <target>...",
		Short: "Check that a subject matches one of the targets",
		Long: `Check that the subject identifier equals at least one target.
The subject must be a valid ObjectID. Targets in 24 character hex form are
compared as ObjectIDs, so letter case does not matter for them.
Exits non-zero on mismatch.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := parseValue(args[0])
			targets := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				targets = append(targets, parseValue(a))
			}

			if err := validator.Apply(validator.SameObjectID("subject", subject, targets)); err != nil {
				opts.log.Debug("subject does not match", logger.ObjectID(args[0]), logger.Rule("objectid_same"), logger.Error(err))
				return report(cmd, opts, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}
}

// parseValue turns hex strings into ObjectIDs and keeps everything else as is.
func parseValue(s string) any {
	if id, err := bson.ObjectIDFromHex(s); err == nil {
		return id
	}
	return s
}
