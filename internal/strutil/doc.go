// Package strutil provides bounded, null-terminated string construction on
// caller-owned byte buffers, plus whole-token integer parsing.
//
// The primary use cases are:
//   - Building fixed-capacity C-string style buffers (copy, append,
//     formatted write) that can never overflow their declared capacity
//   - Making every truncation or misuse observable through an injected
//     Reporter instead of silently corrupting data
//   - Converting complete textual tokens to integers with base
//     auto-detection
//
// A buffer's capacity is len(buf) and its content is the bytes before the
// first NUL. After any operation the buffer is either untouched (on a
// non-recoverable input error) or NUL-terminated with content strictly
// shorter than its capacity.
package strutil
