package testsupport

import (
	"fmt"
	"strings"
	"sync"
)

// Reporter captures diagnostic output for assertions in tests.
type Reporter struct {
	mu     sync.Mutex
	errors []string
	debugs []string
}

func (r *Reporter) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *Reporter) Debugf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs = append(r.debugs, fmt.Sprintf(format, args...))
}

// Errors returns the error-level messages recorded so far.
func (r *Reporter) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Debugs returns the debug-level messages recorded so far.
func (r *Reporter) Debugs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.debugs...)
}

// Reset clears all recorded messages.
func (r *Reporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = nil
	r.debugs = nil
}

// HasError reports whether any recorded error message contains substr.
func (r *Reporter) HasError(substr string) bool {
	for _, msg := range r.Errors() {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
