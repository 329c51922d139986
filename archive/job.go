package archive

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	// DefaultSplitSize is the volume size used when the caller does not
	// specify one. 40m keeps volumes under common per-file hosting caps.
	DefaultSplitSize = "40m"

	compressionLevel  = "9" // ultra
	compressionMethod = "lzma2"
	archiveExtension  = ".7z"
)

// Job describes a single archival run. It is immutable input to the
// pipeline: created once from CLI arguments or caller configuration and
// consumed by Pipeline.Run.
type Job struct {
	// RunID tags all log output for this run.
	RunID string

	// Source is the directory to compress.
	Source string

	// DestDir is the directory the volumes are written to. It is created,
	// parents included, on a live run.
	DestDir string

	// SplitSize is the per-volume size limit, passed verbatim to the
	// compressor (e.g. "40m", "2g"). The compressor validates the format.
	SplitSize string

	// DryRun reports the work that would be done without writing anything
	// or invoking the compressor.
	DryRun bool

	// InitGit initializes a git repository in DestDir when none exists.
	InitGit bool

	// HandleSignals subscribes the run to os.Interrupt so partial volumes
	// are removed when the user aborts. Only the CLI entry point should set
	// this; library callers own their signal handling.
	HandleSignals bool
}

// NewJob returns a Job with a fresh run ID and default settings.
func NewJob(source, destDir string) Job {
	return Job{
		RunID:     uuid.New().String(),
		Source:    source,
		DestDir:   destDir,
		SplitSize: DefaultSplitSize,
		InitGit:   true,
	}
}

// ArchiveName returns the archive base name, "<sourceDirName>.7z".
func (j Job) ArchiveName() string {
	return filepath.Base(j.Source) + archiveExtension
}

// OutputPath returns the unsplit archive path in the destination directory.
// Split volumes append .001, .002, ... to this path.
func (j Job) OutputPath() string {
	return filepath.Join(j.DestDir, j.ArchiveName())
}

// FirstVolumePath returns the path of the first split volume.
func (j Job) FirstVolumePath() string {
	return j.OutputPath() + ".001"
}

// Result is produced by a completed pipeline run.
type Result struct {
	// ArchiveName is the archive base name, e.g. "case1.7z".
	ArchiveName string

	// Volumes lists the created volume paths in order. Empty for dry runs.
	Volumes []string

	// DryRun reports whether the run was a simulation.
	DryRun bool
}

func volumeName(base string, n int) string {
	return fmt.Sprintf("%s.%03d", base, n)
}
