//go:build windows

package util

import "os"

// Readable reports whether the current process can read path.
func Readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Writable approximates write access from the file mode bits. Windows ACLs
// are not consulted; the compressor surfaces any remaining denial.
func Writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0200 != 0
}
