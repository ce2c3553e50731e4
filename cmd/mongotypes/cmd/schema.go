package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of an ObjectID field",
		Long: `Print the JSON Schema describing an ObjectID as it appears in JSON:
a 24 character hex string. Useful for API documents and form generators.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := &jsonschema.Reflector{DoNotReference: true}
			out, err := json.MarshalIndent(r.Reflect(odm.ObjectID{}), "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
