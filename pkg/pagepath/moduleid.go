package pagepath

import (
	"fmt"
	"strings"
)

// CleanModuleID removes the query suffix a module loader may append to an
// identifier (e.g. "?import&v=3"). Everything from the first "?" is dropped.
func CleanModuleID(moduleID string) string {
	id, _, _ := strings.Cut(moduleID, "?")

	return id
}

// CleanUnknownPath normalizes separators and strips any query suffix.
func CleanUnknownPath(p string) string {
	return CleanModuleID(ToPosixPath(p))
}

// NormalizeModuleID maps a raw module identifier from the loader to the best
// available path: its root-relative form when it lies under root, otherwise
// the cleaned filesystem-absolute path.
//
// Normalizing a result again returns it unchanged, unless the result is itself
// a filesystem path under root. That happens when the last segment of root
// repeats below it: with root "/pages", "/pages/pages/x.tsx" becomes
// "/pages/x.tsx" and then "/x.tsx". Callers should not feed results back in.
func NormalizeModuleID(rawID, root string) (string, error) {
	if err := assertRoot(root); err != nil {
		return "", err
	}

	fsPath := CleanUnknownPath(rawID)
	if err := AssertFilesystemAbsolute(fsPath); err != nil {
		return "", fmt.Errorf("module id %q: %w", rawID, err)
	}

	rel, ok, err := ToRootRelative(fsPath, root)
	if err != nil {
		return "", fmt.Errorf("module id %q: %w", rawID, err)
	}

	if ok {
		return rel, nil
	}

	return fsPath, nil
}

// DisplayPathFromUnknown returns the most readable form of a path whose
// representation is unknown. Paths under root are shown root-relative; any
// other value (an import specifier, a path outside the project, an already
// relative label) is returned cleaned but otherwise verbatim.
func DisplayPathFromUnknown(rawPath, root string) (string, error) {
	if err := assertRoot(root); err != nil {
		return "", err
	}

	p := CleanUnknownPath(rawPath)
	if !IsFilesystemAbsolute(p) {
		return p, nil
	}

	rel, ok, err := ToRootRelative(p, root)
	if err != nil {
		return "", fmt.Errorf("path %q: %w", rawPath, err)
	}

	if !ok {
		return p, nil
	}

	return rel, nil
}

func assertRoot(root string) error {
	if err := AssertFilesystemAbsolute(root); err != nil {
		return fmt.Errorf("root: %w", err)
	}

	return nil
}
