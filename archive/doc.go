// Package archive implements the safety-checked archival pipeline.
//
// A Pipeline takes an immutable Job (source directory, destination, split
// size, mode flags) and drives it through a strictly linear sequence:
//
//   - locate the external compressor (fatal if missing)
//   - validate permissions and check for an existing archive collision
//   - create the destination and optionally initialize a git repository
//   - estimate the source size and warn on low destination disk space
//   - invoke the compressor with split-volume parameters (or report the
//     command on a dry run)
//   - verify the result with the compressor's test mode
//
// Compression itself is delegated to an external 7-Zip binary; this package
// only constructs and supervises the invocation. Any failure after the
// archive write begins triggers best-effort removal of partial volumes, so a
// failed or interrupted run never leaves orphaned .001/.002 files behind.
//
// Interrupt handling is scoped, not global: Run derives a cancellation
// context from os.Interrupt only when the Job opts in, and releases the
// subscription before returning. On cancellation the running compressor is
// abandoned in place and partial output is cleaned up.
//
// External collaborators are injected through small interfaces
// (CommandExecutor, Confirmer) so tests can simulate compressor behavior
// without a 7-Zip installation.
package archive
