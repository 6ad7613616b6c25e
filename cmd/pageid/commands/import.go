package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/pageid/pkg/importstr"
	"github.com/macropower/pageid/pkg/pagepath"
)

const (
	importDesc = `Parse an import string and build the identity of the file it points to.

Import strings have the form import:<importPath>[:<exportName>]. Relative
import paths are resolved against the directory of --importer.
`
	importExample = `  pageid import --root /project 'import:./Layout.tsx:Layout' --importer /pages/+config.ts
  pageid import --root /project import:my-lib/renderer/onRenderHtml
`
)

var ErrImportFailed = errors.New("import resolution failed")

// ImportResult is the identity an import string points to, along with the
// export it names.
type ImportResult struct {
	ExportName string `json:"exportName"`
	Identity   any    `json:"identity"`
}

// NewImportCmd returns the import command.
func NewImportCmd(arg *RootArgs) *cobra.Command {
	args := NewImportArgs(arg)

	cmd := &cobra.Command{
		Use:     "import IMPORT_STRING",
		Short:   "Resolve an import string",
		Long:    importDesc,
		Example: importExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			imp, ok, err := importstr.Parse(pArgs[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			if !ok {
				return fmt.Errorf("%w: %q is not an import string", ErrInvalidArgument, pArgs[0])
			}

			r, err := newResolver(args.RootArgs)
			if err != nil {
				return err
			}

			var importer pagepath.FileIdentity

			if rel := args.GetImporter(); rel != "" {
				importer, err = r.ResolveRootRelativePath(rel, "")
				if err != nil {
					return fmt.Errorf("%w: importer: %w", ErrInvalidArgument, err)
				}
			}

			id, err := importstr.Resolve(r, imp, importer)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrImportFailed, err)
			}

			slog.Debug("resolved import string",
				slog.String("import", imp.String()),
				slog.Bool("resolved", id.IsResolved()),
			)

			out, err := newRenderer(cc, args.RootArgs)
			if err != nil {
				return err
			}

			return out.Render(ImportResult{
				ExportName: imp.ExportName,
				Identity:   record(id),
			})
		},
	}

	cmd.Flags().StringVar(args.importer, "importer", "", "Root-relative path of the file containing the import string")

	return cmd
}

func record(id pagepath.FileIdentity) any {
	switch id := id.(type) {
	case pagepath.ResolvedFileIdentity:
		return id.Record()
	case pagepath.UnresolvedFileIdentity:
		return id.Record()
	}

	return id
}

// ImportArgs holds the arguments for the import command.
type ImportArgs struct {
	importer *string
	*RootArgs
}

// NewImportArgs creates a new [ImportArgs].
func NewImportArgs(args *RootArgs) *ImportArgs {
	return &ImportArgs{
		importer: new(string),
		RootArgs: args,
	}
}

func (a *ImportArgs) GetImporter() string {
	return *a.importer
}
