//go:build !windows

package util

import "golang.org/x/sys/unix"

// Readable reports whether the current process can read path.
func Readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// Writable reports whether the current process can write to path.
func Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
