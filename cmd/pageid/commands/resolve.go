package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/macropower/pageid/pkg/pagepath"
)

const (
	resolveDesc = `Build the identity of a file whose location is known.

Exactly one of --fs or --root-relative must be given. The other path is
derived from the project root. A filesystem path outside the root has no
root-relative path.
`
	resolveExample = `  # From a filesystem path
  pageid resolve --root /project --fs /project/pages/index/+Page.tsx

  # From a root-relative path, reached through a package import
  pageid resolve --root /project --root-relative /pages/about/+Page.tsx --import my-lib/pages/about/+Page.tsx
`
)

var ErrResolveFailed = errors.New("resolve failed")

// NewResolveCmd returns the resolve command.
func NewResolveCmd(arg *RootArgs) *cobra.Command {
	args := NewResolveArgs(arg)

	cmd := &cobra.Command{
		Use:     "resolve",
		Short:   "Build a resolved file identity",
		Long:    resolveDesc,
		Example: resolveExample,
		Args:    cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			r, err := newResolver(args.RootArgs)
			if err != nil {
				return err
			}

			var in pagepath.ResolvedInput

			if fsPath := args.GetFilesystemPath(); fsPath != "" {
				abs, err := filepath.Abs(fsPath)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
				}

				in = pagepath.FilesystemInput{
					FilesystemPath:  pagepath.ToPosixPath(abs),
					ImportSpecifier: args.GetImportSpecifier(),
				}
			} else {
				in = pagepath.RootRelativeInput{
					RootRelativePath: args.GetRootRelativePath(),
					ImportSpecifier:  args.GetImportSpecifier(),
				}
			}

			id, err := r.Resolve(in)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrResolveFailed, err)
			}

			slog.Debug("resolved file identity",
				slog.String("filesystemPath", id.FilesystemPath()),
				slog.String("canonicalVitePath", id.CanonicalVitePath()),
			)

			out, err := newRenderer(cc, args.RootArgs)
			if err != nil {
				return err
			}

			return out.Render(id.Record())
		},
	}

	cmd.Flags().StringVar(args.filesystemPath, "fs", "", "Absolute filesystem path of the file")
	must(cmd.MarkFlagFilename("fs"))

	cmd.Flags().StringVar(args.rootRelativePath, "root-relative", "", "Path of the file relative to the root, starting with /")
	cmd.Flags().StringVar(args.importSpecifier, "import", "", "Package import specifier the file was reached through")

	cmd.MarkFlagsMutuallyExclusive("fs", "root-relative")
	cmd.MarkFlagsOneRequired("fs", "root-relative")

	return cmd
}

// ResolveArgs holds the arguments for the resolve command.
type ResolveArgs struct {
	filesystemPath   *string
	rootRelativePath *string
	importSpecifier  *string
	*RootArgs
}

// NewResolveArgs creates a new [ResolveArgs].
func NewResolveArgs(args *RootArgs) *ResolveArgs {
	return &ResolveArgs{
		filesystemPath:   new(string),
		rootRelativePath: new(string),
		importSpecifier:  new(string),
		RootArgs:         args,
	}
}

func (a *ResolveArgs) GetFilesystemPath() string {
	return *a.filesystemPath
}

func (a *ResolveArgs) GetRootRelativePath() string {
	return *a.rootRelativePath
}

func (a *ResolveArgs) GetImportSpecifier() string {
	return *a.importSpecifier
}
