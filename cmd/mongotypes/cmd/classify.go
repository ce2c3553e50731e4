package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mongotypes/pkg/mongotypes"
)

func newClassifyCmd(opts *options) *cobra.Command {
	var parse bool

	cmd := &cobra.Command{
		Use:   "classify <value>",
		Short: "Print the representation kind of a value",
		Long: `Print the representation kind of a value. Shell arguments are strings,
so the kind is "string" unless --parse is set. With --parse, values in
24 character hex form are turned into an ObjectID first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v any = args[0]
			if parse {
				v = parseValue(args[0])
			}
			kind := mongotypes.Classify(v)
			opts.log.Debug("value classified", slog.String("value", args[0]), slog.String("kind", kind.String()))
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}

	cmd.Flags().BoolVar(&parse, "parse", false, "parse hex values into ObjectIDs")
	return cmd
}
