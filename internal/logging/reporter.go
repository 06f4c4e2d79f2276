package logging

import (
	"fmt"
	"log/slog"

	"klogd/internal/strutil"
)

type slogReporter struct {
	logger *slog.Logger
}

// NewReporter adapts logger to the Reporter channel the string and lock
// primitives report through. Errorf maps to error level, Debugf to debug.
func NewReporter(logger *slog.Logger) strutil.Reporter {
	if logger == nil {
		logger = NewNop()
	}
	return &slogReporter{logger: logger}
}

func (r *slogReporter) Errorf(format string, args ...any) {
	r.logger.Error(fmt.Sprintf(format, args...))
}

func (r *slogReporter) Debugf(format string, args ...any) {
	r.logger.Debug(fmt.Sprintf(format, args...))
}
