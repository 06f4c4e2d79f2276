package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"klogd/internal/strutil"
)

func (c *Config) normalize() error {
	if err := c.normalizeDaemon(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeDaemon() error {
	c.Daemon.Component = strings.TrimSpace(c.Daemon.Component)
	if value, ok := os.LookupEnv("KLOGD_COMPONENT"); ok && strings.TrimSpace(value) != "" {
		c.Daemon.Component = strings.TrimSpace(value)
	}
	if c.Daemon.Component == "" {
		c.Daemon.Component = defaultComponent
	}

	if value, ok := os.LookupEnv("KLOGD_LOCK_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Daemon.LockDir = value
	}
	if strings.TrimSpace(c.Daemon.LockDir) == "" {
		c.Daemon.LockDir = defaultLockDir
	}
	var err error
	if c.Daemon.LockDir, err = expandPath(c.Daemon.LockDir); err != nil {
		return fmt.Errorf("daemon.lock_dir: %w", err)
	}

	if value, ok := os.LookupEnv("KLOGD_SHUTDOWN_GRACE"); ok && strings.TrimSpace(value) != "" {
		n, parsed := strutil.ParseInt(value)
		if !parsed {
			return fmt.Errorf("daemon.shutdown_grace_seconds: KLOGD_SHUTDOWN_GRACE %q is not an integer", value)
		}
		c.Daemon.ShutdownGraceSeconds = n
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}
