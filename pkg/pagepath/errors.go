package pagepath

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation indicates a caller passed a value that breaks a
	// documented precondition.
	ErrContractViolation = errors.New("contract violation")

	// ErrEmptyPath indicates a required path was empty.
	ErrEmptyPath = fmt.Errorf("%w: empty path", ErrContractViolation)

	// ErrNotPosixPath indicates a path still contains backslash separators.
	ErrNotPosixPath = fmt.Errorf("%w: path is not forward-slash normalized", ErrContractViolation)

	// ErrNotFilesystemAbsolute indicates a path is not filesystem-absolute.
	ErrNotFilesystemAbsolute = fmt.Errorf("%w: path is not filesystem-absolute", ErrContractViolation)

	// ErrNotRootRelative indicates a path is not a valid root-relative path.
	ErrNotRootRelative = fmt.Errorf("%w: path is not root-relative", ErrContractViolation)

	// ErrNotPackageImport indicates a value is not a package import specifier.
	ErrNotPackageImport = fmt.Errorf("%w: not a package import specifier", ErrContractViolation)

	// ErrUnknownInput indicates an unsupported [ResolvedInput] implementation.
	ErrUnknownInput = fmt.Errorf("%w: unknown input kind", ErrContractViolation)
)

// Must returns v, or panics if err is non-nil. It is meant for callers that
// treat contract violations as fatal programming errors.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
