package cmd

import (
	"github.com/spf13/cobra"

	"github.com/githubify/githubify/archive"
	"github.com/githubify/githubify/internal/config"
)

type packOptions struct {
	splitSize  string
	dryRun     bool
	noGit      bool
	configPath string
}

func addPackFlags(cmd *cobra.Command, opts *packOptions) {
	cmd.Flags().StringVar(&opts.splitSize, "split", "", `Split volume size, e.g. "10m", "1g" (default "40m")`)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Simulate the process without writing files")
	cmd.Flags().BoolVar(&opts.noGit, "no-git", false, "Skip git repository initialization in the destination")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
}

// NewPackCmd creates and returns the pack subcommand for the githubify CLI.
// It is the explicit form of the root command's default behavior.
func NewPackCmd() *cobra.Command {
	opts := &packOptions{}

	cmd := &cobra.Command{
		Use:   "pack SOURCE DESTINATION",
		Short: "Compress a directory into a split, verified 7-Zip archive",
		Long: `Compress SOURCE into a split 7-Zip archive under DESTINATION.

The archive is named after the source directory (<name>.7z) and written as
numbered volumes (<name>.7z.001, <name>.7z.002, ...). After compression the
first volume is re-tested with the compressor's verify mode; a failed run of
any kind removes the partial volumes it produced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args, opts)
		},
	}
	addPackFlags(cmd, opts)

	return cmd
}

func runPack(cmd *cobra.Command, args []string, opts *packOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// No point validating anything else when the tools are missing.
	if cfg.Compressor == "" {
		if err := archive.CheckDependencies(); err != nil {
			return err
		}
	}

	job := archive.NewJob(args[0], args[1])
	job.SplitSize = effectiveSplitSize(cfg.SplitSize, opts.splitSize)
	job.DryRun = opts.dryRun
	job.InitGit = !opts.noGit && !cfg.DisableGit
	job.HandleSignals = true

	var popts []archive.Option
	if cfg.Compressor != "" {
		popts = append(popts, archive.WithCompressorPath(cfg.Compressor))
	}

	_, err = archive.New(popts...).Run(cmd.Context(), job)
	return err
}

// effectiveSplitSize resolves the split size: an explicit flag beats the
// configured default.
func effectiveSplitSize(configured, flag string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return archive.DefaultSplitSize
}
