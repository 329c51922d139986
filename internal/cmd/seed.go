package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the githubify CLI.
// It generates throwaway source trees for exercising split archiving.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		fileSize   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files for split-archive experiments",
		Long: `Generate a directory of test files to compress.

Files are distributed across numbered subdirectories (100 files per
directory) and filled with repeated UUID lines up to the requested size.
Useful for trying out split sizes and cleanup behavior without risking real
data.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, fileSize, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&fileSize, "size", "s", 4096, "Approximate size of each file in bytes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount, fileSize int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d test files of ~%d bytes in %s\n", fileCount, fileSize, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for i := 0; i < fileCount; i++ {
		dir := filepath.Join(outputPath, fmt.Sprintf("%03d", i/100))
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory: %v", err)
		}

		path := filepath.Join(dir, fmt.Sprintf("file-%05d.txt", i))
		if err := os.WriteFile(path, seedContent(fileSize), 0644); err != nil {
			log.Fatalf("Failed to write test file: %v", err)
		}

		if verbose && (i+1)%100 == 0 {
			fmt.Printf("Progress: %d/%d files created\n", i+1, fileCount)
		}
	}

	fmt.Printf("Created %d files in %s\n", fileCount, outputPath)
}

// seedContent fills a buffer with repeated UUID lines up to roughly size
// bytes. Content is unique per file so solid compression still has work to
// do.
func seedContent(size int) []byte {
	line := uuid.New().String() + "\n"
	var b strings.Builder
	b.Grow(size + len(line))
	for b.Len() < size {
		b.WriteString(line)
	}
	return []byte(b.String())
}
