package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version of the build.
	Version = "0.0.0-dev"

	// Revision is the VCS revision of the build.
	Revision = ""
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision.
func String() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
