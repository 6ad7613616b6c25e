// Package version provides version information for the application.
//
// Version and Revision can be set at link time with -ldflags "-X". When they
// are not, Revision falls back to the VCS revision recorded in the build
// info.
package version
