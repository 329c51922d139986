// Package version reports version information for the githubify binary.
//
// Release builds inject Version and Commit with
// -ldflags "-X .../version.Version=v1.0.0 -X .../version.Commit=abc123";
// development builds fall back to the VCS metadata in debug.ReadBuildInfo.
package version
