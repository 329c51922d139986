// Package util provides host-level helpers for the githubify pipeline.
//
// This package contains the operations that touch the host system directly:
//
// Executable Discovery:
//   - LookupCompressor finds the 7-Zip binary on PATH (7z, then 7za) with a
//     fallback to the conventional Windows install directories
//   - LookupGit finds the git binary on PATH
//
// Size Estimation:
//   - DirSize recursively sums regular-file sizes; unreadable directories
//     contribute zero and log a warning instead of aborting
//
// Permission Probes:
//   - Readable and Writable check effective access rights, implemented with
//     unix.Access on POSIX systems and a mode-bit approximation on Windows
//
// All functions are side-effect free with respect to the filesystem; they
// only query it.
package util
