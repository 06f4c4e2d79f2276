// Command klogd runs the kernel-log daemon core and its control surface.
//
// Subcommands: run (foreground daemon with the instance lock held),
// status (probe whether an instance holds the lock), and config
// (init/show configuration).
package main
