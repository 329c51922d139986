// Package main provides the githubify command-line interface.
//
// githubify compresses a source directory into a split, integrity-verified
// 7-Zip archive sized for hosting platforms with per-file limits. Runs are
// safety-checked end to end: permissions, archive collisions and free disk
// space are validated before anything is written, and partial volumes are
// removed if compression fails, verification fails, or the run is
// interrupted.
//
// The main binary supports multiple subcommands:
//   - pack: compress a directory into a split, verified archive (also the
//     root command's behavior)
//   - verify: test an existing archive for corruption
//   - size: report the recursive size of a directory tree
//   - seed: generate test files for split-archive experiments
package main
