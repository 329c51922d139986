package util

import (
	"os"
	"os/exec"
	"runtime"
)

// compressorNames are tried on PATH in order.
var compressorNames = []string{"7z", "7za"}

// windowsCompressorPaths are the conventional 7-Zip install locations probed
// when the PATH lookup fails on Windows.
var windowsCompressorPaths = []string{
	`C:\Program Files\7-Zip\7z.exe`,
	`C:\Program Files (x86)\7-Zip\7z.exe`,
}

// LookupCompressor locates the 7-Zip executable. It checks the process
// search path first, then the standard Windows install directories. The
// returned path is the first match; it is not checked for executability.
func LookupCompressor() (string, bool) {
	for _, name := range compressorNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, true
		}
	}

	if runtime.GOOS == "windows" {
		for _, path := range windowsCompressorPaths {
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}

	return "", false
}

// LookupGit locates the git executable on the process search path.
func LookupGit() (string, bool) {
	path, err := exec.LookPath("git")
	return path, err == nil
}
