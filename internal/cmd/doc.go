// Package cmd provides the command-line interface implementation for
// githubify.
//
// This package contains all the subcommand implementations for the githubify
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: runs a pack when invoked with SOURCE and DESTINATION
//   - pack: compress a directory into a split, verified 7-Zip archive
//   - verify: test an existing archive with the compressor's verify mode
//   - size: report the recursive size of a directory tree
//   - seed: generate test files for split-archive experiments
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Flag handling and configuration
// loading happen here; the actual pipeline lives in the archive package.
package cmd
