// Package pagepath resolves the identity of page source files.
//
// A file can be referenced by its absolute filesystem path, by a path
// relative to the project root directory (written with a leading slash), or by
// a package import specifier. This package converts between those
// representations and builds immutable identity records from whichever one is
// known at the call site.
//
// Every function is pure. Precondition failures are reported as errors that
// wrap [ErrContractViolation]; they indicate a defect in the caller and should
// abort the current operation (see [Must]). A path lying outside the root
// directory is not an error and is reported through an ok result instead.
package pagepath
