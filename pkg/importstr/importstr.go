package importstr

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/macropower/pageid/pkg/pagepath"
)

const (
	// Prefix marks a configuration value as an import string.
	Prefix = "import:"

	// DefaultExport is the export name used when none is given.
	DefaultExport = "default"
)

var (
	// ErrInvalidImportString indicates a value has the import prefix but is
	// malformed.
	ErrInvalidImportString = errors.New("invalid import string")

	// ErrMissingImporter indicates a relative import path was resolved
	// without the file that contains it.
	ErrMissingImporter = errors.New("relative import requires a resolved importer")

	exportNameRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// ImportString is a parsed import string.
type ImportString struct {
	ImportPath string
	ExportName string
}

// Parse parses s. It returns ok == false if s is not an import string, and an
// error if it is one but is malformed.
func Parse(s string) (ImportString, bool, error) {
	rest, ok := strings.CutPrefix(s, Prefix)
	if !ok {
		return ImportString{}, false, nil
	}

	importPath, exportName, hasExport := strings.Cut(rest, ":")
	if importPath == "" {
		return ImportString{}, true, fmt.Errorf("%w: %q: empty import path", ErrInvalidImportString, s)
	}

	if !hasExport {
		exportName = DefaultExport
	}

	if !exportNameRe.MatchString(exportName) {
		return ImportString{}, true, fmt.Errorf("%w: %q: invalid export name %q", ErrInvalidImportString, s, exportName)
	}

	if err := pagepath.AssertPosixPath(importPath); err != nil {
		return ImportString{}, true, fmt.Errorf("%w: %q: %w", ErrInvalidImportString, s, err)
	}

	return ImportString{ImportPath: importPath, ExportName: exportName}, true, nil
}

// String returns the import string form of i. The default export name is
// omitted.
func (i ImportString) String() string {
	if i.ExportName == "" || i.ExportName == DefaultExport {
		return Prefix + i.ImportPath
	}

	return Prefix + i.ImportPath + ":" + i.ExportName
}

// IsRelative reports whether the import path is relative to the importer.
func (i ImportString) IsRelative() bool {
	return strings.HasPrefix(i.ImportPath, "./") || strings.HasPrefix(i.ImportPath, "../")
}

// Resolve builds the identity of the file i points to.
//
// Root-relative import paths yield a [pagepath.ResolvedFileIdentity].
// Relative import paths are joined with the directory of importer, which
// must be resolved. Package import specifiers yield a
// [pagepath.UnresolvedFileIdentity]; the loader locates them later.
func Resolve(r *pagepath.Resolver, i ImportString, importer pagepath.FileIdentity) (pagepath.FileIdentity, error) {
	switch {
	case strings.HasPrefix(i.ImportPath, "/"):
		id, err := r.ResolveRootRelativePath(path.Clean(i.ImportPath), "")
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", i, err)
		}

		return id, nil

	case i.IsRelative():
		base, ok := importer.(pagepath.ResolvedFileIdentity)
		if !ok {
			return nil, fmt.Errorf("resolve %s: %w", i, ErrMissingImporter)
		}

		fsPath := path.Join(path.Dir(base.FilesystemPath()), i.ImportPath)

		id, err := r.ResolveFilesystemPath(fsPath, "")
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", i, err)
		}

		return id, nil

	default:
		id, err := r.Unresolved(i.ImportPath)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", i, err)
		}

		return id, nil
	}
}
