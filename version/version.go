// Package version holds the name and build information of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "crtemu"

// number is set by the makefile for release builds. it is empty otherwise
var number string

// the version and vcs revision decided at init. if the program was built
// outside of version control both fall back to placeholder strings
var version string
var revision string

// Version returns the version string, the revision string and whether this
// is a numbered release build
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns a string suitable for a window title or usage header. the
// revision is only included for non-release builds
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func init() {
	version = number
	revision = "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		if version == "" {
			version = "local"
		}
		return
	}

	var vcs bool
	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}
	if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	if version == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	}
}
