// Package proclock enforces single-instance execution for a daemon
// process with an exclusive, non-blocking advisory lock on a well-known
// PID file.
//
// The lock, not the file content, is the exclusivity mechanism: the
// owning PID is written into the file purely for human diagnostics. The
// descriptor stays open and locked for the life of the holding process,
// and the kernel releases the lock automatically when the process exits,
// so a crashed daemon never leaves a stuck lock behind.
package proclock
