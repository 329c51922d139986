package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/githubify/githubify/util"
)

// NewSizeCmd creates and returns the size subcommand for the githubify CLI.
// It reports the recursive size of a directory tree.
func NewSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size [PATH]",
		Short: "Report the recursive size of a directory tree",
		Long: `Report the total size of all regular files under a directory.

This is the same estimate the pack command uses for its free-disk-space
check. Subdirectories that cannot be read are skipped with a warning and
contribute zero.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "./"
			if len(args) > 0 {
				path = args[0]
			}
			runSize(path)
		},
	}

	return cmd
}

func runSize(path string) {
	if _, err := os.Stat(path); err != nil {
		log.Fatalf("Cannot access %s: %v", path, err)
	}

	size := util.DirSize(path)
	fmt.Printf("Total size: %d bytes (%.2f MB)\n", size, float64(size)/(1<<20))
}
