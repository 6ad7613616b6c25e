package paths

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFileNotFound indicates no matching directory was found.
	ErrFileNotFound = errors.New("file not found")

	// ErrResolvedOutsideRoot indicates the start path lies outside the search
	// boundary.
	ErrResolvedOutsideRoot = errors.New("path resolved outside root")

	// UserRootMarkers are the files whose presence marks a directory as the
	// user root directory.
	UserRootMarkers = []string{
		"vite.config.js",
		"vite.config.ts",
		"vite.config.mjs",
		"vite.config.cjs",
		"vite.config.mts",
		"vite.config.cts",
		"package.json",
	}
)

// FindRepoRoot returns the closest (innermost) git repository root for the
// provided path by searching bottom-up from path toward /. This matches the
// behavior of git rev-parse --show-toplevel, correctly resolving worktrees
// nested inside a parent repository. If no git repository is found, it will
// return an error.
func FindRepoRoot(path string) (string, error) {
	// Look for a `.git` directory containing a `HEAD` file.
	target1 := ".git"
	target2 := "HEAD"

	f, err := findClosestFile(volumeRoot(path), path, func(s string) (bool, error) {
		checkPath1 := filepath.Join(s, target1)
		fi1, err := os.Lstat(checkPath1)
		if err != nil {
			return false, fmt.Errorf("%s: %w", checkPath1, err)
		}

		var headPath string

		switch {
		case fi1.IsDir():
			headPath = filepath.Join(checkPath1, target2)
		default:
			gitDir, gitFileErr := resolveGitFile(checkPath1, s)
			if gitFileErr != nil {
				return false, nil //nolint:nilerr // Intentionally skip malformed .git files.
			}

			headPath = filepath.Join(gitDir, target2)
		}

		fi2, err := os.Lstat(headPath)
		if err != nil {
			return false, fmt.Errorf("%s: %w", headPath, err)
		}

		return !fi2.IsDir(), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Join(target1, target2), err)
	}

	return f, nil
}

// FindUserRootDir returns the closest directory at or above path that
// contains one of [UserRootMarkers]. The search stops at the enclosing git
// repository root when there is one.
func FindUserRootDir(path string) (string, error) {
	ceiling, err := FindRepoRoot(path)
	if err != nil {
		ceiling = volumeRoot(path)
	}

	f, err := findClosestFile(ceiling, path, func(s string) (bool, error) {
		for _, marker := range UserRootMarkers {
			fi, err := os.Lstat(filepath.Join(s, marker))
			if err == nil && !fi.IsDir() {
				return true, nil
			}
		}

		return false, nil
	})
	if err != nil {
		return "", fmt.Errorf("user root directory: %w", err)
	}

	return f, nil
}

// DiscoverRoot returns the user root directory for path as a forward-slash
// absolute path. It falls back to the absolute form of path itself when no
// marker file is found.
func DiscoverRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	root, err := FindUserRootDir(abs)
	if err != nil {
		slog.Debug("no user root directory found, using path",
			slog.String("path", abs),
			slog.Any("err", err),
		)

		root = abs
	}

	slog.Debug("discovered root", slog.String("root", root))

	return filepath.ToSlash(root), nil
}

// resolveGitFile reads a `.git` file (as used in git worktrees) and resolves
// the gitdir path it points to. The file is expected to contain a single line
// in the format `gitdir: <path>`. Relative paths are resolved against baseDir.
func resolveGitFile(dotGitPath, baseDir string) (string, error) {
	f, err := os.Open(dotGitPath) //nolint:gosec // dotGitPath is constructed from filepath.Join, not user input.
	if err != nil {
		return "", fmt.Errorf("open git file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Best-effort close.

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty git file")
	}

	line := strings.TrimSpace(scanner.Text())

	gitDir, found := strings.CutPrefix(line, "gitdir: ")
	if !found {
		return "", errors.New("missing gitdir prefix")
	}

	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(baseDir, gitDir)
	}

	return filepath.Clean(gitDir), nil
}

// findClosestFile walks from path upward toward root, returning the first
// directory where test returns true.
func findClosestFile(root, path string, test func(string) (bool, error)) (string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	rel, err := filepath.Rel(rootAbs, pathAbs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrResolvedOutsideRoot, pathAbs)
	}

	currentDir := pathAbs
	for {
		match, err := test(currentDir)
		if err == nil && match {
			return currentDir, nil
		}

		if currentDir == rootAbs {
			break
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", ErrFileNotFound
}

func volumeRoot(path string) string {
	return filepath.VolumeName(path) + string(filepath.Separator)
}
