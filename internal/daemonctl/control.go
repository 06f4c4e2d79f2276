// Package daemonctl gives the CLI a read-only view of daemon state by
// probing the instance lock from outside the daemon process.
package daemonctl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"klogd/internal/config"
	"klogd/internal/strutil"
)

// Status describes the observed daemon state.
type Status struct {
	Running      bool
	PID          int
	LockFilePath string
}

// LockFilePath returns the lock file location for cfg.
func LockFilePath(cfg *config.Config) string {
	return filepath.Join(cfg.Daemon.LockDir, cfg.Daemon.Component+".pid")
}

// Probe reports whether a daemon instance currently holds the lock at
// lockPath. Probing never disturbs a held lock: a successful TryLock only
// proves nobody was holding it and is undone immediately. When the lock
// is held, the holder's PID is read back from the file for display.
func Probe(lockPath string) (Status, error) {
	st := Status{LockFilePath: lockPath}

	if _, err := os.Stat(filepath.Dir(lockPath)); errors.Is(err, fs.ErrNotExist) {
		// No lock directory means no daemon has ever started here.
		return st, nil
	}

	fl := flock.New(lockPath)
	acquired, err := fl.TryLock()
	if err != nil {
		return st, fmt.Errorf("probe lock %s: %w", lockPath, err)
	}
	if acquired {
		if err := fl.Unlock(); err != nil {
			return st, fmt.Errorf("release probe lock %s: %w", lockPath, err)
		}
		return st, nil
	}

	st.Running = true
	if data, err := os.ReadFile(lockPath); err == nil {
		if pid, ok := strutil.ParseInt(strings.TrimSpace(string(data))); ok {
			st.PID = pid
		}
	}
	return st, nil
}
