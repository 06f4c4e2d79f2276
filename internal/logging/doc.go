// Package logging assembles the structured slog loggers used across the
// daemon and bridges them to the Reporter diagnostic channel the string
// and lock primitives write through.
//
// It owns level and output plumbing for the console and JSON handlers and
// provides a no-op logger for tests and wiring code that cannot fail.
// Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
