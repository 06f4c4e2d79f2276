package strutil

import (
	"bytes"
	"fmt"
	"strings"
)

// Reporter is the diagnostic channel for buffer anomalies. Invalid
// arguments and truncations go to Errorf; best-effort failures in callers
// that share the channel go to Debugf. Implementations must be safe to
// call with any format and arguments.
type Reporter interface {
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Errorf(string, ...any) {}
func (nopReporter) Debugf(string, ...any) {}

// Nop returns a Reporter that discards all diagnostics.
func Nop() Reporter { return nopReporter{} }

// Strings performs bounded string construction on caller-owned buffers,
// reporting every anomaly through the injected Reporter.
type Strings struct {
	rep Reporter
}

// NewStrings returns a Strings that reports through rep. A nil rep
// discards diagnostics.
func NewStrings(rep Reporter) *Strings {
	if rep == nil {
		rep = Nop()
	}
	return &Strings{rep: rep}
}

// Length returns the content length of buf, excluding the terminator. A
// buffer with no terminator reports len(buf), which Append treats as an
// invariant violation.
func Length(buf []byte) int {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return i
	}
	return len(buf)
}

// String returns the content of buf before the terminator.
func String(buf []byte) string {
	return string(buf[:Length(buf)])
}

// Copy writes a NUL-terminated copy of src into dst. A nil or
// zero-capacity dst is reported and left untouched. A nil src leaves dst
// as the empty string and is reported. A src that does not fit is
// truncated to len(dst)-1 bytes and the truncation reported.
func (s *Strings) Copy(dst, src []byte) {
	if dst == nil {
		s.rep.Errorf("strcopy: nil dst")
		return
	}
	if len(dst) < 1 {
		s.rep.Errorf("strcopy: zero-capacity dst")
		return
	}

	dst[0] = 0

	if src == nil {
		s.rep.Errorf("strcopy: nil src")
		return
	}

	n := len(src)
	if n >= len(dst) {
		s.rep.Errorf("strcopy: truncating %q to %d bytes", src, len(dst)-1)
		n = len(dst) - 1
	}
	copy(dst, src[:n])
	dst[n] = 0
}

// Append appends src to the existing content of dst in place. The
// existing content must be terminated within the buffer; an unterminated
// dst is an invariant violation and the call is a reported no-op rather
// than a partial recovery. A nil src is a reported no-op, an empty src a
// silent one. An appended portion that does not fit is truncated and the
// truncation reported.
func (s *Strings) Append(dst, src []byte) {
	if dst == nil {
		s.rep.Errorf("strappend: nil dst")
		return
	}
	if len(dst) < 1 {
		s.rep.Errorf("strappend: zero-capacity dst")
		return
	}

	cur := Length(dst)
	if cur >= len(dst) {
		s.rep.Errorf("strappend: unterminated dst")
		return
	}

	if src == nil {
		s.rep.Errorf("strappend: nil src")
		return
	}
	if len(src) == 0 {
		return
	}

	free := len(dst) - 1 - cur
	n := len(src)
	if n > free {
		s.rep.Errorf("strappend: truncating %q to %d bytes", src, free)
		n = free
	}
	if n > 0 {
		copy(dst[cur:], src[:n])
		dst[cur+n] = 0
	}
}

// Sprintf formats into dst with the capacity discipline of Copy. Go's fmt
// cannot return an error; it embeds %!-style markers in the output
// instead, and a marker is treated as the formatting-failure path: dst is
// forced empty and the failure reported. A result that would reach
// len(dst) is cut to len(dst)-1 bytes and re-terminated explicitly there,
// without assuming the formatting primitive bounded anything itself.
func (s *Strings) Sprintf(dst []byte, format string, args ...any) {
	if dst == nil {
		s.rep.Errorf("strformat: nil dst")
		return
	}
	if len(dst) < 1 {
		s.rep.Errorf("strformat: zero-capacity dst")
		return
	}

	dst[0] = 0

	out := fmt.Sprintf(format, args...)
	if strings.Contains(out, "%!") {
		s.rep.Errorf("strformat: bad format %q", format)
		dst[0] = 0
		return
	}

	if len(out) >= len(dst) {
		s.rep.Errorf("strformat: truncating %d-byte result to %d bytes", len(out), len(dst)-1)
		copy(dst, out[:len(dst)-1])
		dst[len(dst)-1] = 0
		return
	}

	copy(dst, out)
	dst[len(out)] = 0
}
