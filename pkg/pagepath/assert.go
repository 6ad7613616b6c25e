package pagepath

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var (
	// Matches an npm package name (or a scope name without its "@").
	packageNameRe = regexp.MustCompile(`^[A-Za-z0-9~-][A-Za-z0-9._~-]*$`)

	// Extensions that mark a single bare segment as a file name rather than a
	// package name.
	sourceFileExts = map[string]bool{
		".js":     true,
		".jsx":    true,
		".mjs":    true,
		".cjs":    true,
		".ts":     true,
		".tsx":    true,
		".mts":    true,
		".cts":    true,
		".vue":    true,
		".svelte": true,
		".md":     true,
		".mdx":    true,
		".json":   true,
		".css":    true,
	}
)

// ToPosixPath replaces backslash separators with forward slashes. It is the
// only separator normalization this package performs.
func ToPosixPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// AssertPosixPath returns an error if p contains a backslash.
func AssertPosixPath(p string) error {
	if strings.Contains(p, `\`) {
		return fmt.Errorf("%w: %q", ErrNotPosixPath, p)
	}

	return nil
}

// IsFilesystemAbsolute reports whether p is a forward-slash path rooted at
// "/" or at a drive root such as "C:/".
func IsFilesystemAbsolute(p string) bool {
	return strings.HasPrefix(p, "/") || hasDriveRoot(p)
}

// AssertFilesystemAbsolute returns an error unless p is a non-empty,
// forward-slash, filesystem-absolute path.
func AssertFilesystemAbsolute(p string) error {
	if p == "" {
		return ErrEmptyPath
	}

	if err := AssertPosixPath(p); err != nil {
		return err
	}

	if !IsFilesystemAbsolute(p) {
		return fmt.Errorf("%w: %q", ErrNotFilesystemAbsolute, p)
	}

	return nil
}

// IsRootRelativePath reports whether p is "/" or a sequence of "/segment"
// elements with no empty, "." or ".." segments.
func IsRootRelativePath(p string) bool {
	if p == "/" {
		return true
	}

	rest, ok := strings.CutPrefix(p, "/")
	if !ok || strings.Contains(p, `\`) {
		return false
	}

	for seg := range strings.SplitSeq(rest, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}

	return true
}

// AssertRootRelativePath returns an error unless p satisfies
// [IsRootRelativePath].
func AssertRootRelativePath(p string) error {
	if p == "" {
		return ErrEmptyPath
	}

	if err := AssertPosixPath(p); err != nil {
		return err
	}

	if !IsRootRelativePath(p) {
		return fmt.Errorf("%w: %q", ErrNotRootRelative, p)
	}

	return nil
}

// IsPackageImport reports whether p has the shape of a package import
// specifier: a bare or scoped package name, optionally followed by a
// sub-path. Relative paths, absolute paths and bare file names are rejected.
func IsPackageImport(p string) bool {
	if p == "" || strings.Contains(p, `\`) {
		return false
	}

	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, ".") || hasDriveRoot(p) {
		return false
	}

	segs := strings.Split(p, "/")

	name := segs[0]
	scoped := strings.HasPrefix(name, "@")
	if scoped {
		if len(segs) < 2 || !packageNameRe.MatchString(name[1:]) {
			return false
		}

		name = segs[1]
		segs = segs[2:]
	} else {
		segs = segs[1:]
	}

	if !packageNameRe.MatchString(name) {
		return false
	}

	for _, seg := range segs {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}

	if !scoped && len(segs) == 0 && isBareFileName(name) {
		return false
	}

	return true
}

// AssertPackageImport returns an error unless p satisfies [IsPackageImport].
func AssertPackageImport(p string) error {
	if p == "" {
		return ErrEmptyPath
	}

	if !IsPackageImport(p) {
		return fmt.Errorf("%w: %q", ErrNotPackageImport, p)
	}

	return nil
}

// isBareFileName reports whether a single unscoped segment looks like a file
// name. Names such as "chart.js" follow the npm naming convention and are
// kept as packages; "index.page.js" and "Page.tsx" are not.
func isBareFileName(name string) bool {
	ext := path.Ext(name)
	if !sourceFileExts[ext] {
		return false
	}

	if ext == ".js" {
		return strings.Contains(strings.TrimSuffix(name, ext), ".")
	}

	return true
}

func hasDriveRoot(p string) bool {
	if len(p) < 3 || p[1] != ':' || p[2] != '/' {
		return false
	}

	c := p[0]

	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
