package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/githubify/githubify/archive"
	"github.com/githubify/githubify/internal/config"
)

// NewVerifyCmd creates and returns the verify subcommand for the githubify
// CLI. It tests an existing archive without producing or removing anything.
func NewVerifyCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "verify ARCHIVE",
		Short: "Verify the integrity of an existing split archive",
		Long: `Run the compressor's built-in test mode against an existing archive.

ARCHIVE may name the first volume (<name>.7z.001), the unsplit archive file
(<name>.7z), or the base path of a split set; the .001 volume is tested when
present and the compressor follows the split chain from there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			var popts []archive.Option
			if cfg.Compressor != "" {
				popts = append(popts, archive.WithCompressorPath(cfg.Compressor))
			}

			if err := archive.New(popts...).Verify(args[0]); err != nil {
				return err
			}
			fmt.Println("[SUCCESS] Archive verified successfully.")
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	return cmd
}
