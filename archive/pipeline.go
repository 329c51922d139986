package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/githubify/githubify/util"
)

// Pipeline runs the validate, compress, verify sequence for one Job at a
// time. Control flows strictly top to bottom; each stage may abort the run.
type Pipeline struct {
	exec           CommandExecutor
	confirm        Confirmer
	isTerminal     func() bool
	diskFree       func(path string) (uint64, error)
	stdout         io.Writer
	stderr         io.Writer
	compressorPath string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExecutor substitutes the subprocess executor, typically with a fake in
// tests.
func WithExecutor(e CommandExecutor) Option {
	return func(p *Pipeline) { p.exec = e }
}

// WithConfirmer substitutes the low-disk-space confirmation prompt.
func WithConfirmer(c Confirmer) Option {
	return func(p *Pipeline) { p.confirm = c }
}

// WithOutput redirects the pipeline's user-facing output streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(p *Pipeline) {
		p.stdout = stdout
		p.stderr = stderr
	}
}

// WithCompressorPath overrides compressor discovery with an explicit path.
func WithCompressorPath(path string) Option {
	return func(p *Pipeline) { p.compressorPath = path }
}

// WithTerminalCheck substitutes interactive-terminal detection.
func WithTerminalCheck(fn func() bool) Option {
	return func(p *Pipeline) { p.isTerminal = fn }
}

// WithDiskFree substitutes the free-space lookup used by the disk-space
// check.
func WithDiskFree(fn func(path string) (uint64, error)) Option {
	return func(p *Pipeline) { p.diskFree = fn }
}

// New creates a Pipeline wired to the host system. Options replace
// individual collaborators.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		exec:       NewSystemExecutor(),
		confirm:    NewStdinConfirmer(),
		isTerminal: StdinIsTerminal,
		diskFree:   defaultDiskFree,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CheckDependencies verifies that the external tools the pipeline shells out
// to are installed, returning install hints when they are not.
func CheckDependencies() error {
	if _, ok := util.LookupCompressor(); !ok {
		return fmt.Errorf("%w\n  - Please install 7-Zip from https://www.7-zip.org/\n  - Ensure '7z' is in your PATH or in a standard install location.", ErrCompressorNotFound)
	}
	if _, ok := util.LookupGit(); !ok {
		return fmt.Errorf("%w\n  - Please install Git from https://git-scm.com/\n  - Ensure 'git' is in your PATH.", ErrGitNotFound)
	}
	return nil
}

// Run executes the full pipeline for job.
//
// Dependency and validation errors abort before any write occurs. Any
// failure after the archive write begins (compression failure, integrity
// failure, interrupt) triggers best-effort cleanup of partial volumes before
// the error is surfaced. A dry run ends successfully after reporting the
// command that would run.
func (p *Pipeline) Run(ctx context.Context, job Job) (*Result, error) {
	source, err := filepath.Abs(job.Source)
	if err != nil {
		return nil, errors.Wrap(err, "resolving source path")
	}
	destDir, err := filepath.Abs(job.DestDir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving destination path")
	}
	job.Source = source
	job.DestDir = destDir
	if job.RunID == "" {
		job.RunID = uuid.New().String()
	}
	logger := log.WithField("run_id", job.RunID)

	compressor := p.compressorPath
	if compressor == "" {
		path, ok := util.LookupCompressor()
		if !ok {
			return nil, ErrCompressorNotFound
		}
		compressor = path
	}

	fmt.Fprintf(p.stdout, "--- 1. Pre-flight Checks: %s ---\n", filepath.Base(job.Source))
	if err := p.validate(job); err != nil {
		return nil, err
	}

	if job.DryRun {
		fmt.Fprintf(p.stdout, "[DRY RUN] Would create directory: %s\n", job.DestDir)
	} else {
		if err := os.MkdirAll(job.DestDir, 0755); err != nil {
			return nil, errors.Wrap(err, "creating destination directory")
		}
		if job.InitGit {
			p.ensureGitRepo(job.DestDir, logger)
		}
	}

	if err := p.checkDiskSpace(job, logger); err != nil {
		return nil, err
	}

	if job.DryRun {
		return p.reportDryRun(compressor, job), nil
	}

	// Scoped signal subscription: acquired here, released on every exit
	// path. Only the CLI opts in; library callers keep their own handling.
	if job.HandleSignals {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
	}

	if err := p.compress(ctx, compressor, job, logger); err != nil {
		p.Cleanup(job.DestDir, job.ArchiveName())
		return nil, err
	}

	fmt.Fprintln(p.stdout, "\n--- 3. Verifying Integrity ---")
	if err := p.verifyArchive(compressor, job); err != nil {
		p.Cleanup(job.DestDir, job.ArchiveName())
		return nil, err
	}
	fmt.Fprintln(p.stdout, "[SUCCESS] Archive verified successfully.")

	volumes, err := filepath.Glob(filepath.Join(job.DestDir, job.ArchiveName()+".*"))
	if err != nil {
		// Glob only fails on patterns broken by metacharacters in the
		// archive name; the verified first volume is still reported.
		logger.WithError(err).Warn("could not list created volumes")
		volumes = nil
		if _, statErr := os.Stat(job.FirstVolumePath()); statErr == nil {
			volumes = []string{job.FirstVolumePath()}
		}
	}
	if _, err := os.Stat(job.OutputPath()); err == nil {
		volumes = append(volumes, job.OutputPath())
	}
	sort.Strings(volumes)

	fmt.Fprintf(p.stdout, "\n[DONE] Archive saved to: %s\n", job.DestDir)
	return &Result{ArchiveName: job.ArchiveName(), Volumes: volumes}, nil
}
