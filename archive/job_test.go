package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobNaming(t *testing.T) {
	job := NewJob("/data/cfd/case1", "/backup/out")

	assert.Equal(t, "case1.7z", job.ArchiveName())
	assert.Equal(t, filepath.Join("/backup/out", "case1.7z"), job.OutputPath())
	assert.Equal(t, filepath.Join("/backup/out", "case1.7z.001"), job.FirstVolumePath())
	assert.NotEmpty(t, job.RunID)
	assert.Equal(t, DefaultSplitSize, job.SplitSize)
	assert.True(t, job.InitGit)
	assert.False(t, job.HandleSignals, "signal handling is opt-in")
}

func TestVolumeName(t *testing.T) {
	assert.Equal(t, "case1.7z.001", volumeName("case1.7z", 1))
	assert.Equal(t, "case1.7z.012", volumeName("case1.7z", 12))
	assert.Equal(t, "case1.7z.123", volumeName("case1.7z", 123))
}

func TestCompressorArgs(t *testing.T) {
	args := compressorArgs("/out/case1.7z", "/data/case1", "40m")

	assert.Equal(t, []string{
		"a",
		"/out/case1.7z",
		"/data/case1",
		"-t7z",
		"-mx=9",
		"-m0=lzma2",
		"-ms=on",
		"-v40m",
	}, args)
}
