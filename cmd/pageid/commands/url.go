package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pageid/pkg/pageurl"
)

// NewURLCmd returns the url command.
func NewURLCmd(arg *RootArgs) *cobra.Command {
	args := NewURLArgs(arg)

	cmd := &cobra.Command{
		Use:   "url URL",
		Short: "Convert a page URL to its page context request URL",
		Example: `  pageid url '/products/42?ref=home'
  pageid url --reverse /products/42/index.pageContext.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			u := pArgs[0]

			if args.GetReverse() {
				page, ok := pageurl.PageURL(u)
				if !ok {
					return fmt.Errorf("%w: %q is not a page context request URL", ErrInvalidArgument, u)
				}

				u = page
			} else {
				u = pageurl.PageContextRequestURL(u)
			}

			out, err := newRenderer(cc, args.RootArgs)
			if err != nil {
				return err
			}

			return out.Render(u)
		},
	}

	cmd.Flags().BoolVarP(args.reverse, "reverse", "r", false, "Convert a page context request URL back to the page URL")

	return cmd
}

// URLArgs holds the arguments for the url command.
type URLArgs struct {
	reverse *bool
	*RootArgs
}

// NewURLArgs creates a new [URLArgs].
func NewURLArgs(args *RootArgs) *URLArgs {
	return &URLArgs{
		reverse:  new(bool),
		RootArgs: args,
	}
}

func (a *URLArgs) GetReverse() bool {
	return *a.reverse
}
