package pagepath

// Resolver binds the package functions to a single root directory. It is
// immutable and safe for concurrent use. Create instances with [NewResolver].
type Resolver struct {
	root string
}

// NewResolver validates root and returns a [Resolver] for it. The root must
// be a forward-slash, filesystem-absolute path; a trailing slash is removed.
func NewResolver(root string) (*Resolver, error) {
	if err := assertRoot(root); err != nil {
		return nil, err
	}

	return &Resolver{root: cleanPath(root)}, nil
}

// Root returns the cleaned root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve calls [BuildResolved] with the resolver's root.
func (r *Resolver) Resolve(in ResolvedInput) (ResolvedFileIdentity, error) {
	return BuildResolved(in, r.root)
}

// ResolveFilesystemPath builds an identity from an absolute filesystem path
// and an optional import specifier.
func (r *Resolver) ResolveFilesystemPath(filesystemPath, importSpecifier string) (ResolvedFileIdentity, error) {
	return BuildResolved(FilesystemInput{
		FilesystemPath:  filesystemPath,
		ImportSpecifier: importSpecifier,
	}, r.root)
}

// ResolveRootRelativePath builds an identity from a root-relative path and an
// optional import specifier.
func (r *Resolver) ResolveRootRelativePath(rootRelativePath, importSpecifier string) (ResolvedFileIdentity, error) {
	return BuildResolved(RootRelativeInput{
		RootRelativePath: rootRelativePath,
		ImportSpecifier:  importSpecifier,
	}, r.root)
}

// Unresolved calls [BuildUnresolved].
func (*Resolver) Unresolved(importSpecifier string) (UnresolvedFileIdentity, error) {
	return BuildUnresolved(importSpecifier)
}

// ToRootRelative calls [ToRootRelative] with the resolver's root.
func (r *Resolver) ToRootRelative(filesystemPath string) (string, bool, error) {
	return ToRootRelative(filesystemPath, r.root)
}

// ToFilesystemAbsolute calls [ToFilesystemAbsolute] with the resolver's root.
func (r *Resolver) ToFilesystemAbsolute(rootRelativePath string) (string, error) {
	return ToFilesystemAbsolute(rootRelativePath, r.root)
}

// NormalizeModuleID calls [NormalizeModuleID] with the resolver's root.
func (r *Resolver) NormalizeModuleID(rawID string) (string, error) {
	return NormalizeModuleID(rawID, r.root)
}

// DisplayPath calls [DisplayPathFromUnknown] with the resolver's root.
func (r *Resolver) DisplayPath(rawPath string) (string, error) {
	return DisplayPathFromUnknown(rawPath, r.root)
}
