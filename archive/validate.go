package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
	log "github.com/sirupsen/logrus"

	"github.com/githubify/githubify/util"
)

// defaultDiskFree reports the free bytes on the volume containing path.
func defaultDiskFree(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// validate runs the pre-flight checks that must pass before anything is
// written: source readability, destination writability, and the collision
// check on the first volume.
func (p *Pipeline) validate(job Job) error {
	if !util.Readable(job.Source) {
		return fmt.Errorf("%w: %s", ErrSourceUnreadable, job.Source)
	}

	// The destination may not exist yet; walk up to the nearest existing
	// ancestor and require write access there.
	probe := job.DestDir
	for {
		if _, err := os.Stat(probe); err == nil {
			break
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			break
		}
		probe = parent
	}
	if !util.Writable(probe) {
		return fmt.Errorf("%w: %s", ErrDestinationUnwritable, probe)
	}

	if _, err := os.Stat(job.FirstVolumePath()); err == nil {
		return fmt.Errorf("%w: %s", ErrArchiveExists, volumeName(job.ArchiveName(), 1))
	}

	return nil
}

// checkDiskSpace estimates the uncompressed source size and warns when the
// destination volume has less free space than that. The warning is non-fatal:
// an interactive live run asks for confirmation, everything else proceeds.
func (p *Pipeline) checkDiskSpace(job Job, logger *log.Entry) error {
	fmt.Fprintf(p.stdout, "Calculating source size...")
	sourceSize := util.DirSize(job.Source)
	fmt.Fprintf(p.stdout, " %.2f MB\n", float64(sourceSize)/(1<<20))

	if _, err := os.Stat(job.DestDir); err != nil {
		// Only reachable on a dry run; live runs create the destination
		// before this check.
		fmt.Fprintln(p.stdout, "[DRY RUN] Destination drive space check skipped (directory does not exist yet).")
		return nil
	}

	free, err := p.diskFree(job.DestDir)
	if err != nil {
		logger.WithError(err).Warn("could not determine free disk space")
		return nil
	}
	if free >= uint64(sourceSize) {
		return nil
	}

	logger.Warnf("low disk space: %d MB free, source is %d MB",
		free/(1<<20), sourceSize/(1<<20))

	if job.DryRun {
		return nil
	}
	if !p.isTerminal() {
		logger.Warn("non-interactive mode: proceeding despite low disk space")
		return nil
	}
	if !p.confirm.Confirm("Compression might fail or fill the disk. Continue?") {
		return fmt.Errorf("%w: insufficient disk space", ErrCancelledByUser)
	}
	return nil
}
