package strutil

import "strconv"

// ParseInt converts a complete textual token to an int. The base is
// detected from the prefix (0x, 0o, 0b, or a leading zero for octal);
// bare tokens are decimal. The whole input must be consumed: an empty
// string, leading or trailing whitespace, trailing garbage, or overflow
// of 64 bits all fail. The parsed value is narrowed to the platform int
// width, so values past that width wrap rather than fail.
func ParseInt(text string) (int, bool) {
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
