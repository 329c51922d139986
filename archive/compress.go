package archive

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// compressorArgs builds the archiving invocation: add mode, ultra
// compression, lzma2, solid mode, and the split-volume size passed verbatim.
func compressorArgs(outputPath, source, splitSize string) []string {
	return []string{
		"a",
		outputPath,
		source,
		"-t7z",
		"-mx=" + compressionLevel,
		"-m0=" + compressionMethod,
		"-ms=on",
		"-v" + splitSize,
	}
}

// reportDryRun prints the command that would run and the volume names it
// would create, then ends the pipeline without touching the filesystem.
func (p *Pipeline) reportDryRun(compressor string, job Job) *Result {
	args := compressorArgs(job.OutputPath(), job.Source, job.SplitSize)

	fmt.Fprintln(p.stdout, "[DRY RUN] Command to be executed:")
	fmt.Fprintf(p.stdout, "  %s %s\n", compressor, strings.Join(args, " "))
	fmt.Fprintln(p.stdout, "[DRY RUN] This would create files like:")
	fmt.Fprintf(p.stdout, "  - %s\n", volumeName(job.ArchiveName(), 1))
	fmt.Fprintf(p.stdout, "  - %s\n", volumeName(job.ArchiveName(), 2))
	fmt.Fprintln(p.stdout, "  - ...")

	return &Result{ArchiveName: job.ArchiveName(), DryRun: true}
}

// compress runs the compressor synchronously. When ctx is cancelled mid-run
// the subprocess is abandoned in place (the OS reclaims it) and
// ErrInterrupted is returned so the caller can clean up partial volumes
// immediately rather than leave corrupt output behind.
func (p *Pipeline) compress(ctx context.Context, compressor string, job Job, logger *log.Entry) error {
	fmt.Fprintf(p.stdout, "\n--- 2. Compressing & Splitting (Max: %s) ---\n", job.SplitSize)

	args := compressorArgs(job.OutputPath(), job.Source, job.SplitSize)
	cmd := exec.Command(compressor, args...)
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr

	logger.WithField("command", cmd.String()).Info("starting compression")

	done := make(chan error, 1)
	go func() {
		done <- p.exec.Run(cmd)
	}()

	select {
	case <-ctx.Done():
		logger.Warn("interrupted, abandoning compressor")
		return ErrInterrupted
	case err := <-done:
		if err == nil {
			return nil
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return newCompressionError(exitCode, err)
	}
}
