package testsupport

import (
	"path/filepath"
	"testing"

	"klogd/internal/config"
)

// NewConfig returns a validated config whose lock and log directories
// live under a per-test temp dir.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Daemon.Component = "klogd-test"
	cfg.Daemon.LockDir = filepath.Join(base, "run")
	cfg.Daemon.ShutdownGraceSeconds = 0
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("fixture config invalid: %v", err)
	}
	return &cfg
}
