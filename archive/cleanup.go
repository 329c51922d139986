package archive

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Cleanup removes every partial volume matching <archiveName>.* in destDir,
// plus the unsplit archive file itself. It is best-effort: individual
// deletion failures are logged as warnings and never escalated, so no
// failure after the archive write begins can leave orphaned volumes behind
// silently.
func (p *Pipeline) Cleanup(destDir, archiveName string) {
	fmt.Fprintln(p.stdout, "\n[SAFETY] Cleaning up partial files...")

	matches, err := filepath.Glob(filepath.Join(destDir, archiveName+".*"))
	if err != nil {
		log.WithError(err).Warn("cleanup glob failed")
		return
	}

	unsplit := filepath.Join(destDir, archiveName)
	if _, err := os.Stat(unsplit); err == nil {
		matches = append(matches, unsplit)
	}

	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			log.WithError(err).Warnf("failed to delete: %s", filepath.Base(path))
			continue
		}
		fmt.Fprintf(p.stdout, " - Deleted: %s\n", filepath.Base(path))
	}
}
