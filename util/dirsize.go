package util

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// DirSize recursively sums the sizes of all regular files under path.
// Symlinks to files contribute the target's size; symlinks to directories
// are not followed, so cycles cannot occur. Directories that cannot be read
// contribute zero and log a warning; the walk itself never fails. Recursion
// depth is bounded by real filesystem depth.
func DirSize(path string) int64 {
	var total int64

	entries, err := os.ReadDir(path)
	if err != nil {
		log.WithError(err).Warnf("cannot read directory: %s", path)
		return 0
	}

	for _, entry := range entries {
		sub := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			total += DirSize(sub)
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(sub)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			total += info.Size()
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.WithError(err).Warnf("cannot stat: %s", sub)
			continue
		}
		total += info.Size()
	}

	return total
}
