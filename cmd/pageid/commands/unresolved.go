package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pageid/pkg/pagepath"
)

// NewUnresolvedCmd returns the unresolved command.
func NewUnresolvedCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "unresolved IMPORT_SPECIFIER",
		Short:   "Build the identity of a file known only by its import specifier",
		Example: "  pageid unresolved my-lib/renderer/+onRenderHtml.js",
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			id, err := pagepath.BuildUnresolved(pArgs[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			out, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			return out.Render(id.Record())
		},
	}
}
