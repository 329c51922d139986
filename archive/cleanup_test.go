package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupRemovesAllForms(t *testing.T) {
	dest := t.TempDir()
	for _, name := range []string{
		"case1.7z",
		"case1.7z.001",
		"case1.7z.002",
		"case1.7z.tmp",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dest, name), []byte("x"), 0644))
	}
	// Unrelated files survive.
	require.NoError(t, os.WriteFile(filepath.Join(dest, "notes.txt"), []byte("keep"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "case2.7z.001"), []byte("keep"), 0644))

	var out bytes.Buffer
	p := New(WithOutput(&out, &out))
	p.Cleanup(dest, "case1.7z")

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"notes.txt", "case2.7z.001"}, names)
}

func TestCleanupOnEmptyDirectory(t *testing.T) {
	var out bytes.Buffer
	p := New(WithOutput(&out, &out))

	// Nothing to delete and a nonexistent directory must both be harmless.
	p.Cleanup(t.TempDir(), "case1.7z")
	p.Cleanup(filepath.Join(t.TempDir(), "missing"), "case1.7z")
}
