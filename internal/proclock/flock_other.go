//go:build !unix

package proclock

import (
	"errors"
	"os"
)

// ErrUnsupported marks platforms without advisory file locking.
var ErrUnsupported = errors.New("process lock is not supported on this platform")

func tryLock(_ *os.File) error {
	return ErrUnsupported
}
