package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"klogd/internal/config"
	"klogd/internal/logging"
	"klogd/internal/proclock"
)

// Daemon enforces single-instance execution and carries the process-wide
// lock between Start and Stop.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger

	lock    *proclock.Lock
	running atomic.Bool
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	LockFilePath string
	PID          int
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("daemon requires config and logger")
	}
	return &Daemon{cfg: cfg, logger: logger}, nil
}

// Start acquires the instance lock. A lock held by another process is
// fatal to startup and surfaces immediately; Start never waits for the
// holder to exit.
func (d *Daemon) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	lock, err := proclock.Acquire(d.cfg.Daemon.LockDir, d.cfg.Daemon.Component, logging.NewReporter(d.logger))
	if err != nil {
		if errors.Is(err, proclock.ErrAlreadyRunning) {
			return fmt.Errorf("another %s instance is already running: %w", d.cfg.Daemon.Component, err)
		}
		return fmt.Errorf("acquire instance lock: %w", err)
	}

	d.lock = lock
	d.running.Store(true)
	d.logger.Info("daemon started",
		slog.String("lock", lock.Path()),
		slog.Int("pid", os.Getpid()))
	return nil
}

// Stop releases the instance lock and removes the lock file.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	d.lock.Release()
	d.lock = nil
	d.running.Store(false)
	d.logger.Info("daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		LockFilePath: d.lock.Path(),
		PID:          os.Getpid(),
	}
}
