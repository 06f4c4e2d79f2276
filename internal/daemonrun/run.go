// Package daemonrun owns the foreground daemon runtime loop: signal
// handling, logger construction, lock acquisition, and orderly release.
package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"klogd/internal/config"
	"klogd/internal/daemon"
	"klogd/internal/logging"
)

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel string
}

// Run starts the klogd daemon and blocks until SIGINT or SIGTERM. The
// instance lock is held for the whole run and released on the way out,
// after the configured shutdown grace so external log consumers can
// flush.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logCfg := *cfg
	if opts.LogLevel != "" {
		logCfg.Logging.Level = opts.LogLevel
	}
	logger, err := logging.NewFromConfig(&logCfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	d, err := daemon.New(cfg, logger)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Start(signalCtx); err != nil {
		return err
	}

	<-signalCtx.Done()
	logger.Info("shutting down")

	if grace := cfg.Daemon.ShutdownGraceSeconds; grace > 0 {
		time.Sleep(time.Duration(grace) * time.Second)
	}
	d.Stop()
	return nil
}
