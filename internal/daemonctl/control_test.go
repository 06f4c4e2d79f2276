package daemonctl_test

import (
	"os"
	"path/filepath"
	"testing"

	"klogd/internal/daemonctl"
	"klogd/internal/proclock"
	"klogd/internal/testsupport"
)

func TestProbeNoLockDir(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "run", "klogd.pid")

	st, err := daemonctl.Probe(lockPath)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if st.Running {
		t.Fatal("expected not running without a lock directory")
	}
}

func TestProbeIdle(t *testing.T) {
	dir := t.TempDir()

	st, err := daemonctl.Probe(filepath.Join(dir, "klogd.pid"))
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if st.Running {
		t.Fatal("expected not running")
	}
}

func TestProbeSeesHolder(t *testing.T) {
	dir := t.TempDir()

	lock, err := proclock.Acquire(dir, "klogd", nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(lock.Release)

	st, err := daemonctl.Probe(lock.Path())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if !st.Running {
		t.Fatal("expected running while lock is held")
	}
	if st.PID != os.Getpid() {
		t.Fatalf("expected holder pid %d, got %d", os.Getpid(), st.PID)
	}
}

func TestProbeDoesNotDisturbHolder(t *testing.T) {
	dir := t.TempDir()

	lock, err := proclock.Acquire(dir, "klogd", nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(lock.Release)

	if _, err := daemonctl.Probe(lock.Path()); err != nil {
		t.Fatalf("Probe: %v", err)
	}

	// The holder must still be visible after the probe.
	st, err := daemonctl.Probe(lock.Path())
	if err != nil {
		t.Fatalf("second Probe: %v", err)
	}
	if !st.Running {
		t.Fatal("probe disturbed the held lock")
	}
}

func TestLockFilePath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	want := filepath.Join(cfg.Daemon.LockDir, cfg.Daemon.Component+".pid")
	if got := daemonctl.LockFilePath(cfg); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
