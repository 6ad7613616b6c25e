package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/macropower/pageid/internal/render"
	"github.com/macropower/pageid/pkg/jsonschema"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of serialized file identities",
		Long: `Print the JSON schema of serialized file identities.

The schema is printed as JSON unless the output format is yaml.
`,
		Args: cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			js, err := jsonschema.NewReflector().MarshalFileIdentitySchema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			format, err := render.ParseFormat(args.Config().Output)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			if format == render.YAML {
				js, err = yaml.JSONToYAML(js)
				if err != nil {
					return fmt.Errorf("failed to convert schema to yaml: %w", err)
				}

				_, err = cc.OutOrStdout().Write(js)

				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), string(js))

			return err //nolint:wrapcheck
		},
	}
}
