package archive

import (
	"errors"
	"fmt"
)

// Sentinel errors for the archival pipeline.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Dependency errors
	ErrCompressorNotFound = errors.New("7-Zip executable not found")
	ErrGitNotFound        = errors.New("git executable not found")

	// Validation errors
	ErrSourceUnreadable      = errors.New("source is not readable")
	ErrDestinationUnwritable = errors.New("destination path is not writable")
	ErrArchiveExists         = errors.New("archive already exists in destination")

	// Execution errors
	ErrCancelledByUser   = errors.New("operation cancelled by user")
	ErrInterrupted       = errors.New("process cancelled by interrupt")
	ErrCompressionFailed = errors.New("compression failed")
	ErrArchiveMissing    = errors.New("created archive file not found for verification")
	ErrIntegrityFailed   = errors.New("archive integrity check failed")
)

// CompressionError reports a compressor invocation that did not exit cleanly.
// It captures the exit code and wraps ErrCompressionFailed so callers can
// match it with errors.Is.
type CompressionError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *CompressionError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("7-Zip failed with exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("7-Zip failed: %v", e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *CompressionError) Unwrap() error {
	return e.Err
}

// newCompressionError wraps err, recording the exit code when one is known.
// A negative exit code means the compressor never ran to completion.
func newCompressionError(exitCode int, err error) *CompressionError {
	return &CompressionError{
		ExitCode: exitCode,
		Err:      fmt.Errorf("%v: %w", err, ErrCompressionFailed),
	}
}
