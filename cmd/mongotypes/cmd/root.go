package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mongotypes/pkg/config"
	"github.com/dmitrymomot/mongotypes/pkg/logger"
	"github.com/dmitrymomot/mongotypes/pkg/validator"
)

// ErrCheckFailed is returned when a value does not pass a command's check.
// The failure details have already been printed.
var ErrCheckFailed = errors.New("check failed")

type options struct {
	lang string
	log  *slog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mongotypes",
		Short: "Inspect and compare MongoDB ObjectIDs",
		Long: `mongotypes classifies values and checks MongoDB ObjectIDs from a shell.

Commands exit with a non-zero status when a check fails.
LOG_LEVEL and LOG_FORMAT configure diagnostic logging on stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var cfg logger.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			opts.log = logger.New(logger.WithConfig(cfg), logger.WithOutput(cmd.ErrOrStderr()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.lang, "lang", validator.DefaultLanguage, "language of validation messages")

	root.AddCommand(
		newClassifyCmd(opts),
		newCheckCmd(opts),
		newSameCmd(opts),
		newSchemaCmd(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// report prints validation failures in the selected language.
func report(cmd *cobra.Command, opts *options, err error) error {
	errs := validator.ExtractValidationErrors(err)
	if errs == nil {
		return err
	}
	for _, e := range validator.Translate(errs, opts.lang) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", e.Field, e.Message)
	}
	return ErrCheckFailed
}
