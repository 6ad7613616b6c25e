package pagepath

import (
	"encoding/json"
	"fmt"
	"path"
)

// FileIdentity is implemented by [ResolvedFileIdentity] and
// [UnresolvedFileIdentity].
type FileIdentity interface {
	// CanonicalVitePath is the string used by the module-loading layer to
	// identify the file, and the key used for equality across the pipeline.
	CanonicalVitePath() string
	// DisplayPath is the human-facing label for the file.
	DisplayPath() string
	// IsResolved reports whether the filesystem location is known.
	IsResolved() bool
}

// ResolvedInput is the input of [BuildResolved]. It is either a
// [FilesystemInput] or a [RootRelativeInput].
type ResolvedInput interface {
	resolvedInput()
}

// FilesystemInput identifies a file by its absolute filesystem path.
type FilesystemInput struct {
	FilesystemPath string
	// ImportSpecifier is optional; empty means absent.
	ImportSpecifier string
}

// RootRelativeInput identifies a file by its root-relative path.
type RootRelativeInput struct {
	RootRelativePath string
	// ImportSpecifier is optional; empty means absent.
	ImportSpecifier string
}

func (FilesystemInput) resolvedInput()   {}
func (RootRelativeInput) resolvedInput() {}

// ResolvedFileIdentity is the identity of a file whose filesystem location is
// known. The zero value is not valid; use [BuildResolved].
type ResolvedFileIdentity struct {
	filesystemPath   string
	rootRelativePath string
	importSpecifier  string
	fileName         string
}

// BuildResolved builds a [ResolvedFileIdentity] from whichever path
// representation the caller holds. The missing representation is derived
// using root. A filesystem path outside root yields an identity without a
// root-relative path.
func BuildResolved(in ResolvedInput, root string) (ResolvedFileIdentity, error) {
	var (
		fsPath  string
		relPath string
		spec    string
		err     error
	)

	switch in := in.(type) {
	case FilesystemInput:
		spec = in.ImportSpecifier

		if err = AssertFilesystemAbsolute(in.FilesystemPath); err != nil {
			return ResolvedFileIdentity{}, fmt.Errorf("filesystem path: %w", err)
		}

		fsPath = cleanPath(in.FilesystemPath)

		relPath, _, err = ToRootRelative(fsPath, root)
		if err != nil {
			return ResolvedFileIdentity{}, err
		}

	case RootRelativeInput:
		spec = in.ImportSpecifier
		relPath = collapseSlashes(in.RootRelativePath)

		fsPath, err = ToFilesystemAbsolute(relPath, root)
		if err != nil {
			return ResolvedFileIdentity{}, err
		}

	default:
		return ResolvedFileIdentity{}, fmt.Errorf("%w: %T", ErrUnknownInput, in)
	}

	if spec != "" {
		if err := AssertPackageImport(spec); err != nil {
			return ResolvedFileIdentity{}, fmt.Errorf("import specifier: %w", err)
		}
	}

	if err := AssertFilesystemAbsolute(fsPath); err != nil {
		return ResolvedFileIdentity{}, err
	}

	return ResolvedFileIdentity{
		filesystemPath:   fsPath,
		rootRelativePath: relPath,
		importSpecifier:  spec,
		fileName:         path.Base(fsPath),
	}, nil
}

// FilesystemPath returns the absolute, forward-slash filesystem path.
func (r ResolvedFileIdentity) FilesystemPath() string {
	return r.filesystemPath
}

// RootRelativePath returns the root-relative path, or ok == false if the
// file lies outside the root directory.
func (r ResolvedFileIdentity) RootRelativePath() (string, bool) {
	return r.rootRelativePath, r.rootRelativePath != ""
}

// ImportSpecifier returns the package import specifier the file was reached
// through, if any.
func (r ResolvedFileIdentity) ImportSpecifier() (string, bool) {
	return r.importSpecifier, r.importSpecifier != ""
}

// CanonicalVitePath returns the root-relative path when present, otherwise
// the import specifier, otherwise the filesystem path.
func (r ResolvedFileIdentity) CanonicalVitePath() string {
	switch {
	case r.rootRelativePath != "":
		return r.rootRelativePath
	case r.importSpecifier != "":
		return r.importSpecifier
	default:
		return r.filesystemPath
	}
}

// DisplayPath returns the root-relative path when present, otherwise the
// filesystem path.
func (r ResolvedFileIdentity) DisplayPath() string {
	return r.DisplayPathResolved()
}

// DisplayPathResolved is the label shown in diagnostics. Once the filesystem
// location is known it is preferred over the import specifier.
func (r ResolvedFileIdentity) DisplayPathResolved() string {
	if r.rootRelativePath != "" {
		return r.rootRelativePath
	}

	return r.filesystemPath
}

// FileName returns the last segment of the filesystem path.
func (r ResolvedFileIdentity) FileName() string {
	return r.fileName
}

// IsResolved always returns true.
func (ResolvedFileIdentity) IsResolved() bool {
	return true
}

// String implements [fmt.Stringer].
func (r ResolvedFileIdentity) String() string {
	return r.DisplayPathResolved()
}

// Record returns the serializable form of r.
func (r ResolvedFileIdentity) Record() ResolvedRecord {
	return ResolvedRecord{
		FilesystemPath:      r.filesystemPath,
		RootRelativePath:    optional(r.rootRelativePath),
		ImportSpecifier:     optional(r.importSpecifier),
		CanonicalVitePath:   r.CanonicalVitePath(),
		DisplayPath:         r.DisplayPath(),
		DisplayPathResolved: r.DisplayPathResolved(),
		FileName:            r.fileName,
		Resolved:            true,
	}
}

// MarshalJSON implements [json.Marshaler].
func (r ResolvedFileIdentity) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

// UnresolvedFileIdentity is the identity of a file known only by its package
// import specifier. The zero value is not valid; use [BuildUnresolved].
type UnresolvedFileIdentity struct {
	importSpecifier string
}

// BuildUnresolved builds an [UnresolvedFileIdentity] after validating the
// import specifier.
func BuildUnresolved(importSpecifier string) (UnresolvedFileIdentity, error) {
	if err := AssertPackageImport(importSpecifier); err != nil {
		return UnresolvedFileIdentity{}, fmt.Errorf("import specifier: %w", err)
	}

	return UnresolvedFileIdentity{importSpecifier: importSpecifier}, nil
}

// ImportSpecifier returns the package import specifier.
func (u UnresolvedFileIdentity) ImportSpecifier() string {
	return u.importSpecifier
}

// FilesystemPath always returns ok == false.
func (UnresolvedFileIdentity) FilesystemPath() (string, bool) {
	return "", false
}

// RootRelativePath always returns ok == false.
func (UnresolvedFileIdentity) RootRelativePath() (string, bool) {
	return "", false
}

// CanonicalVitePath returns the import specifier.
func (u UnresolvedFileIdentity) CanonicalVitePath() string {
	return u.importSpecifier
}

// DisplayPath returns the import specifier.
func (u UnresolvedFileIdentity) DisplayPath() string {
	return u.importSpecifier
}

// IsResolved always returns false.
func (UnresolvedFileIdentity) IsResolved() bool {
	return false
}

// String implements [fmt.Stringer].
func (u UnresolvedFileIdentity) String() string {
	return u.importSpecifier
}

// Record returns the serializable form of u.
func (u UnresolvedFileIdentity) Record() UnresolvedRecord {
	return UnresolvedRecord{
		ImportSpecifier:   u.importSpecifier,
		CanonicalVitePath: u.importSpecifier,
		DisplayPath:       u.importSpecifier,
	}
}

// MarshalJSON implements [json.Marshaler].
func (u UnresolvedFileIdentity) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Record())
}

// ResolvedRecord is the serialized form of a [ResolvedFileIdentity].
type ResolvedRecord struct {
	RootRelativePath    *string `json:"rootRelativePath"    jsonschema:"oneof_type=string;null,description=Path relative to the root directory or null when outside the root"`
	ImportSpecifier     *string `json:"importSpecifier"     jsonschema:"oneof_type=string;null,description=Package import specifier the file was reached through"`
	FilesystemPath      string  `json:"filesystemPath"      jsonschema:"description=Absolute forward-slash filesystem path"`
	CanonicalVitePath   string  `json:"canonicalVitePath"   jsonschema:"description=Identifier used by the module loader"`
	DisplayPath         string  `json:"displayPath"         jsonschema:"description=Human-facing label"`
	DisplayPathResolved string  `json:"displayPathResolved" jsonschema:"description=Label shown in diagnostics"`
	FileName            string  `json:"fileName"            jsonschema:"description=Last segment of the filesystem path"`
	Resolved            bool    `json:"resolved"`
}

// UnresolvedRecord is the serialized form of an [UnresolvedFileIdentity].
type UnresolvedRecord struct {
	RootRelativePath  *string `json:"rootRelativePath"  jsonschema:"type=null"`
	FilesystemPath    *string `json:"filesystemPath"    jsonschema:"type=null"`
	ImportSpecifier   string  `json:"importSpecifier"   jsonschema:"description=Package import specifier"`
	CanonicalVitePath string  `json:"canonicalVitePath" jsonschema:"description=Identifier used by the module loader"`
	DisplayPath       string  `json:"displayPath"       jsonschema:"description=Human-facing label"`
	Resolved          bool    `json:"resolved"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
