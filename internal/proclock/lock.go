package proclock

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"klogd/internal/strutil"
)

// ErrAlreadyRunning indicates the lock is held by another process.
var ErrAlreadyRunning = errors.New("another instance is already running")

const pathMax = 4096

// Lock holds the exclusive advisory lock for one daemon instance. The
// zero value is safe to Release.
type Lock struct {
	path string
	file *os.File
}

// Acquire takes the exclusive, non-blocking advisory lock for component
// under dir and records the owning PID in <dir>/<component>.pid. It never
// waits: a held lock fails immediately with ErrAlreadyRunning. Directory
// creation is best-effort (the directory usually exists already); only a
// failure to open the lock file is fatal. Truncate and PID-write failures
// degrade diagnostics only, never the exclusivity guarantee.
func Acquire(dir, component string, rep strutil.Reporter) (*Lock, error) {
	if rep == nil {
		rep = strutil.Nop()
	}
	str := strutil.NewStrings(rep)

	_ = os.MkdirAll(dir, 0o777)

	pathBuf := make([]byte, pathMax)
	str.Sprintf(pathBuf, "%s/%s.pid", dir, component)
	path := strutil.String(pathBuf)

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		rep.Errorf("open lock file %s: %v", path, err)
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			if pid := holderPID(path); pid != "" {
				rep.Errorf("lock on %s held by pid %s", path, pid)
			} else {
				rep.Errorf("failed to acquire lock on %s", path)
			}
		} else {
			rep.Errorf("acquire lock on %s: %v", path, err)
		}
		// The descriptor is deliberately left open on failure; callers
		// exit and the OS reclaims it.
		return nil, err
	}

	if err := file.Truncate(0); err != nil {
		rep.Debugf("truncate lock file %s: %v", path, err)
	}

	pidBuf := make([]byte, 16)
	str.Sprintf(pidBuf, "%d\n", os.Getpid())
	payload := pidBuf[:strutil.Length(pidBuf)]
	if n, err := file.WriteAt(payload, 0); err != nil || n < len(payload) {
		rep.Debugf("write pid to lock file %s: %v", path, err)
	}

	return &Lock{path: path, file: file}, nil
}

// Release closes the held descriptor and removes the lock file. It is
// harmless on a nil or zero-value Lock and ignores removal of an
// already-gone file.
func (l *Lock) Release() {
	if l == nil {
		return
	}
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
	if l.path != "" {
		_ = os.Remove(l.path)
	}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// holderPID reads the PID recorded by the current holder, for diagnostic
// messages only. Returns "" when the file is unreadable or not a PID.
func holderPID(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	pid := strings.TrimSpace(string(data))
	if _, ok := strutil.ParseInt(pid); !ok {
		return ""
	}
	return pid
}
