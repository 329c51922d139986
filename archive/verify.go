package archive

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/githubify/githubify/util"
)

// verifyArchive runs the compressor's test mode against the archive this run
// just produced. It tests the first volume; the compressor follows the split
// chain from there.
func (p *Pipeline) verifyArchive(compressor string, job Job) error {
	target := job.FirstVolumePath()
	if _, err := os.Stat(target); err != nil {
		// The -v switch usually forces .001 even for single-volume output,
		// but some 7-Zip versions write the unsplit file when everything
		// fits in one volume.
		target = job.OutputPath()
		if _, err := os.Stat(target); err != nil {
			return ErrArchiveMissing
		}
	}
	return p.testArchive(compressor, target)
}

// Verify runs the compressor's test mode against an existing archive.
// archivePath may name the first volume, the unsplit archive file, or the
// base path of a split set; the .001 volume is preferred when both forms
// resolve.
func (p *Pipeline) Verify(archivePath string) error {
	compressor := p.compressorPath
	if compressor == "" {
		path, ok := util.LookupCompressor()
		if !ok {
			return ErrCompressorNotFound
		}
		compressor = path
	}

	target, err := resolveVerifyTarget(archivePath)
	if err != nil {
		return err
	}
	return p.testArchive(compressor, target)
}

func resolveVerifyTarget(path string) (string, error) {
	candidates := []string{path + ".001", path, strings.TrimSuffix(path, ".001")}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrArchiveMissing, path)
}

// testArchive invokes `<compressor> t <volume>`. The compressor's progress
// output is discarded; only the exit code matters here.
func (p *Pipeline) testArchive(compressor, volumePath string) error {
	cmd := exec.Command(compressor, "t", volumePath)
	cmd.Stdout = io.Discard
	cmd.Stderr = p.stderr

	if err := p.exec.Run(cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrIntegrityFailed, err)
	}
	return nil
}
