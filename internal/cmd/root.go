package cmd

import (
	"github.com/spf13/cobra"

	"github.com/githubify/githubify/version"
)

// NewRootCmd creates and returns the root cobra command for the githubify
// CLI. Running the root command directly is equivalent to the pack
// subcommand.
func NewRootCmd() *cobra.Command {
	opts := &packOptions{}

	rootCmd := &cobra.Command{
		Use:   "githubify SOURCE DESTINATION",
		Short: "Compress and split folders for size-capped hosting",
		Long: `githubify compresses a source directory into a split, integrity-verified
7-Zip archive sized for hosting with per-file limits (GitHub, cloud drives).

SOURCE is the directory to compress.
DESTINATION is the directory the archive volumes are written to; it is
created (with parents) if it does not exist.

The run is safety-checked end to end: permissions, archive collisions and
free disk space are validated up front, and partial volumes are removed if
compression fails, verification fails, or the run is interrupted.`,
		Version: version.GetFullVersion(),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args, opts)
		},
	}
	addPackFlags(rootCmd, opts)

	groupArchive := "archive"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	packCmd := NewPackCmd()
	verifyCmd := NewVerifyCmd()
	sizeCmd := NewSizeCmd()
	seedCmd := NewSeedCmd()

	packCmd.GroupID = groupArchive
	verifyCmd.GroupID = groupArchive
	sizeCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
