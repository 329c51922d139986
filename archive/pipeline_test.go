package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor simulates the compressor without a 7-Zip installation. An
// "a" invocation writes volume files next to the requested output path and
// returns archiveExit; a "t" invocation returns verifyExit.
type fakeExecutor struct {
	archiveExit error
	verifyExit  error
	volumes     int
	unsplit     bool
	commands    [][]string
}

func (f *fakeExecutor) Run(cmd *exec.Cmd) error {
	f.commands = append(f.commands, append([]string(nil), cmd.Args...))
	if len(cmd.Args) < 2 {
		return nil
	}
	switch cmd.Args[1] {
	case "a":
		out := cmd.Args[2]
		if f.unsplit {
			if err := os.WriteFile(out, []byte("archive"), 0644); err != nil {
				return err
			}
		} else {
			for i := 1; i <= f.volumes; i++ {
				path := fmt.Sprintf("%s.%03d", out, i)
				if err := os.WriteFile(path, []byte("volume"), 0644); err != nil {
					return err
				}
			}
		}
		return f.archiveExit
	case "t":
		return f.verifyExit
	}
	return nil
}

type refuseConfirmer struct{}

func (refuseConfirmer) Confirm(string) bool { return false }

func newTestPipeline(e CommandExecutor, extra ...Option) *Pipeline {
	var out bytes.Buffer
	opts := []Option{
		WithExecutor(e),
		WithCompressorPath("7z"),
		WithOutput(&out, &out),
		WithConfirmer(refuseConfirmer{}),
		WithTerminalCheck(func() bool { return false }),
	}
	return New(append(opts, extra...)...)
}

func newTestJob(t *testing.T, sourceBytes int) (Job, string) {
	t.Helper()

	tmp := t.TempDir()
	source := filepath.Join(tmp, "source_data")
	dest := filepath.Join(tmp, "output_data")
	require.NoError(t, os.MkdirAll(source, 0755))
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "data.bin"), bytes.Repeat([]byte("x"), sourceBytes), 0644))

	job := NewJob(source, dest)
	job.InitGit = false
	return job, dest
}

func remainingVolumes(t *testing.T, destDir, archiveName string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(destDir, archiveName+".*"))
	require.NoError(t, err)
	if _, err := os.Stat(filepath.Join(destDir, archiveName)); err == nil {
		matches = append(matches, filepath.Join(destDir, archiveName))
	}
	return matches
}

func TestRunProducesSingleVolume(t *testing.T) {
	job, dest := newTestJob(t, 4000)
	job.SplitSize = "1m"
	fake := &fakeExecutor{volumes: 1}

	result, err := newTestPipeline(fake).Run(context.Background(), job)
	require.NoError(t, err)

	first := filepath.Join(dest, "source_data.7z.001")
	assert.FileExists(t, first)
	assert.NoFileExists(t, filepath.Join(dest, "source_data.7z.002"))
	assert.Equal(t, "source_data.7z", result.ArchiveName)
	assert.Equal(t, []string{first}, result.Volumes)

	// Verification targets the first volume.
	last := fake.commands[len(fake.commands)-1]
	assert.Equal(t, []string{"7z", "t", first}, last)
}

func TestRunDryRunCreatesNoFiles(t *testing.T) {
	job, dest := newTestJob(t, 100)
	job.DryRun = true
	fake := &fakeExecutor{volumes: 1}

	result, err := newTestPipeline(fake).Run(context.Background(), job)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Empty(t, fake.commands, "dry run must not invoke the compressor")

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not create files in the destination")
}

func TestRunDryRunWithMissingDestination(t *testing.T) {
	job, _ := newTestJob(t, 100)
	job.DestDir = filepath.Join(job.DestDir, "not", "yet", "created")
	job.DryRun = true
	fake := &fakeExecutor{}

	_, err := newTestPipeline(fake).Run(context.Background(), job)
	require.NoError(t, err)
	assert.NoDirExists(t, job.DestDir)
}

func TestRunAbortsOnExistingArchive(t *testing.T) {
	job, dest := newTestJob(t, 100)
	require.NoError(t, os.WriteFile(filepath.Join(dest, "source_data.7z.001"), []byte("old"), 0644))
	fake := &fakeExecutor{volumes: 1}

	_, err := newTestPipeline(fake).Run(context.Background(), job)
	require.ErrorIs(t, err, ErrArchiveExists)
	assert.Empty(t, fake.commands, "collision must abort before the compressor is invoked")
}

func TestRunCreatesNestedDestination(t *testing.T) {
	job, dest := newTestJob(t, 100)
	job.DestDir = filepath.Join(dest, "nested", "deeper")
	fake := &fakeExecutor{volumes: 1}

	_, err := newTestPipeline(fake).Run(context.Background(), job)
	require.NoError(t, err)
	assert.DirExists(t, job.DestDir)
	assert.FileExists(t, filepath.Join(job.DestDir, "source_data.7z.001"))
}

func TestRunCompressionFailureCleansUp(t *testing.T) {
	job, dest := newTestJob(t, 100)
	fake := &fakeExecutor{volumes: 2, archiveExit: errors.New("exit status 2")}

	_, err := newTestPipeline(fake).Run(context.Background(), job)
	require.ErrorIs(t, err, ErrCompressionFailed)

	var cerr *CompressionError
	require.ErrorAs(t, err, &cerr)

	assert.Empty(t, remainingVolumes(t, dest, "source_data.7z"),
		"no partial volumes may remain after a compression failure")
}

func TestRunVerificationFailureCleansUp(t *testing.T) {
	job, dest := newTestJob(t, 100)
	fake := &fakeExecutor{volumes: 1, verifyExit: errors.New("exit status 2")}

	_, err := newTestPipeline(fake).Run(context.Background(), job)
	require.ErrorIs(t, err, ErrIntegrityFailed)
	assert.Empty(t, remainingVolumes(t, dest, "source_data.7z"),
		"no volumes may remain after a failed integrity check")
}

func TestRunVerifiesUnsplitArchive(t *testing.T) {
	job, dest := newTestJob(t, 100)
	fake := &fakeExecutor{unsplit: true}

	result, err := newTestPipeline(fake).Run(context.Background(), job)
	require.NoError(t, err)

	unsplit := filepath.Join(dest, "source_data.7z")
	last := fake.commands[len(fake.commands)-1]
	assert.Equal(t, []string{"7z", "t", unsplit}, last)
	assert.Equal(t, []string{unsplit}, result.Volumes)
}

func TestRunSourceUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}

	job, _ := newTestJob(t, 100)
	require.NoError(t, os.Chmod(job.Source, 0o000))
	t.Cleanup(func() { _ = os.Chmod(job.Source, 0o755) })

	_, err := newTestPipeline(&fakeExecutor{}).Run(context.Background(), job)
	require.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestRunDestinationUnwritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}

	job, dest := newTestJob(t, 100)
	locked := filepath.Join(dest, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
	job.DestDir = filepath.Join(locked, "out")

	_, err := newTestPipeline(&fakeExecutor{}).Run(context.Background(), job)
	require.ErrorIs(t, err, ErrDestinationUnwritable)
}

func TestRunListsVolumesDespiteGlobHostileName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("bracket directory names are POSIX-only")
	}

	tmp := t.TempDir()
	// "[" makes the volume-listing pattern invalid for filepath.Glob.
	source := filepath.Join(tmp, "case[1")
	dest := filepath.Join(tmp, "out")
	require.NoError(t, os.MkdirAll(source, 0755))
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "data.bin"), []byte("x"), 0644))

	job := NewJob(source, dest)
	job.InitGit = false
	fake := &fakeExecutor{volumes: 1}

	result, err := newTestPipeline(fake).Run(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dest, "case[1.7z.001")}, result.Volumes)
}

// blockingExecutor writes one partial volume and then never returns,
// standing in for a compressor that is still running when the user hits
// Ctrl+C.
type blockingExecutor struct {
	started chan struct{}
}

func (b *blockingExecutor) Run(cmd *exec.Cmd) error {
	if len(cmd.Args) > 1 && cmd.Args[1] == "a" {
		_ = os.WriteFile(cmd.Args[2]+".001", []byte("partial"), 0644)
		close(b.started)
		select {}
	}
	return nil
}

func TestRunInterruptCleansUp(t *testing.T) {
	job, dest := newTestJob(t, 100)
	blocking := &blockingExecutor{started: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-blocking.started
		cancel()
	}()

	var out bytes.Buffer
	p := New(
		WithExecutor(blocking),
		WithCompressorPath("7z"),
		WithOutput(&out, &out),
		WithTerminalCheck(func() bool { return false }),
	)

	_, err := p.Run(ctx, job)
	require.ErrorIs(t, err, ErrInterrupted)
	assert.Empty(t, remainingVolumes(t, dest, "source_data.7z"),
		"no partial volumes may remain after an interrupt")
}
