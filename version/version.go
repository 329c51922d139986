package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at release build time; development builds fall back to
// the module build info embedded by the Go toolchain.
var (
	Version = "dev"
	Commit  = "unknown"
)

// GetVersion returns the version string, preferring the compile-time value.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetCommit returns the VCS revision, preferring the compile-time value.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetFullVersion returns the version with a short commit suffix when one is
// known, e.g. "v1.2.0 (3fa9c21)".
func GetFullVersion() string {
	v := GetVersion()
	if c := GetCommit(); c != "unknown" && len(c) > 7 {
		return fmt.Sprintf("%s (%s)", v, c[:7])
	}
	return v
}
