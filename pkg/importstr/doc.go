// Package importstr parses import strings found in page configuration
// values and resolves them into file identities.
//
// An import string has the form "import:<importPath>[:<exportName>]". The
// import path is a root-relative path, a path relative to the importing
// config file, or a package import specifier.
package importstr
