package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDaemon(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDaemon() error {
	if c.Daemon.Component == "" {
		return errors.New("daemon.component must be set")
	}
	// The component becomes the lock file basename.
	if strings.ContainsAny(c.Daemon.Component, "/\\ ") {
		return fmt.Errorf("daemon.component %q must not contain path separators or spaces", c.Daemon.Component)
	}
	if c.Daemon.LockDir == "" {
		return errors.New("daemon.lock_dir must be set")
	}
	if c.Daemon.ShutdownGraceSeconds < 0 {
		return errors.New("daemon.shutdown_grace_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
