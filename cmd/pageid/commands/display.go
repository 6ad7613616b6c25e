package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DisplayResult pairs a raw path with the label shown for it.
type DisplayResult struct {
	Input       string `json:"input"`
	DisplayPath string `json:"displayPath"`
}

// NewDisplayCmd returns the display command.
func NewDisplayCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "display RAW_PATH...",
		Short: "Resolve the label shown for a path of unknown kind",
		Long: `Resolve the label shown for a path of unknown kind.

Filesystem paths under the root are shown root-relative. Anything else,
such as import specifiers or paths outside the root, is shown as given
after query suffixes are removed.
`,
		Example: "  pageid display --root /project /project/pages/index/+Page.tsx my-lib/+config.js",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			r, err := newResolver(args)
			if err != nil {
				return err
			}

			results := make([]DisplayResult, 0, len(pArgs))

			for _, raw := range pArgs {
				display, err := r.DisplayPath(raw)
				if err != nil {
					return fmt.Errorf("%w: %q: %w", ErrInvalidArgument, raw, err)
				}

				results = append(results, DisplayResult{Input: raw, DisplayPath: display})
			}

			out, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			return out.Render(results)
		},
	}
}
