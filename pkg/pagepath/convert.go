package pagepath

import (
	"fmt"
	"path"
	"strings"
)

// ToRootRelative converts an absolute filesystem path into a path relative to
// root, written with a leading slash. It returns ok == false if the path does
// not lie under root.
//
// Containment is decided on path segment boundaries, so "/project-other/a"
// is not under "/project". Both arguments are cleaned before comparison.
func ToRootRelative(filesystemPath, root string) (string, bool, error) {
	if err := AssertFilesystemAbsolute(filesystemPath); err != nil {
		return "", false, fmt.Errorf("filesystem path: %w", err)
	}

	if err := AssertFilesystemAbsolute(root); err != nil {
		return "", false, fmt.Errorf("root: %w", err)
	}

	rel, ok := relativeToRoot(cleanPath(filesystemPath), cleanPath(root))
	if !ok {
		return "", false, nil
	}

	if err := AssertRootRelativePath(rel); err != nil {
		return "", false, fmt.Errorf("derived from %q: %w", filesystemPath, err)
	}

	return rel, true, nil
}

// ToFilesystemAbsolute joins root and a root-relative path. It always
// succeeds for valid inputs. Repeated slashes in rootRelativePath, such as
// "/pages//index.page.tsx", are collapsed before it is checked.
func ToFilesystemAbsolute(rootRelativePath, root string) (string, error) {
	rootRelativePath = collapseSlashes(rootRelativePath)
	if err := AssertRootRelativePath(rootRelativePath); err != nil {
		return "", err
	}

	if err := AssertFilesystemAbsolute(root); err != nil {
		return "", fmt.Errorf("root: %w", err)
	}

	return cleanPath(path.Join(root, rootRelativePath)), nil
}

// collapseSlashes replaces each run of slashes in p with a single slash.
func collapseSlashes(p string) string {
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}

	return p
}

// cleanPath is [path.Clean] that keeps the slash of a drive root, so "C:/"
// stays "C:/" rather than becoming "C:".
func cleanPath(p string) string {
	c := path.Clean(p)
	if len(c) == 2 && hasDriveRoot(c+"/") {
		return c + "/"
	}

	return c
}

// relativeToRoot expects cleaned inputs. A cleaned root only ends with a
// slash when it is a volume root ("/" or "C:/").
func relativeToRoot(p, root string) (string, bool) {
	if strings.HasSuffix(root, "/") {
		if !strings.HasPrefix(p, root) {
			return "", false
		}

		return p[len(root)-1:], true
	}

	if p == root {
		return "/", true
	}

	if !strings.HasPrefix(p, root+"/") {
		return "", false
	}

	return p[len(root):], true
}
