package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"klogd/internal/proclock"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootListsSubcommands(t *testing.T) {
	cmd := newRootCommand()

	want := map[string]bool{"run": false, "status": false, "config": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestStatusCommandIdle(t *testing.T) {
	base := t.TempDir()
	t.Setenv("KLOGD_LOCK_DIR", filepath.Join(base, "run"))

	out, err := runCLI(t, "--config", filepath.Join(base, "missing.toml"), "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "running=no") {
		t.Fatalf("expected idle status, got %q", out)
	}
}

func TestStatusCommandSeesRunningDaemon(t *testing.T) {
	base := t.TempDir()
	lockDir := filepath.Join(base, "run")
	t.Setenv("KLOGD_LOCK_DIR", lockDir)
	t.Setenv("KLOGD_COMPONENT", "logd")

	lock, err := proclock.Acquire(lockDir, "logd", nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(lock.Release)

	out, err := runCLI(t, "--config", filepath.Join(base, "missing.toml"), "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "running=yes") {
		t.Fatalf("expected running status, got %q", out)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	base := t.TempDir()

	out, err := runCLI(t, "--config", filepath.Join(base, "missing.toml"), "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "no config file found") {
		t.Fatalf("expected defaults note, got %q", out)
	}
	if !strings.Contains(out, "lock_dir") {
		t.Fatalf("expected rendered config, got %q", out)
	}
}
