package strutil

import "testing"

func TestParseIntDecimal(t *testing.T) {
	n, ok := ParseInt("42")
	if !ok || n != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", n, ok)
	}
}

func TestParseIntNegative(t *testing.T) {
	n, ok := ParseInt("-17")
	if !ok || n != -17 {
		t.Fatalf("expected (-17, true), got (%d, %v)", n, ok)
	}
}

func TestParseIntHexPrefix(t *testing.T) {
	n, ok := ParseInt("0x2A")
	if !ok || n != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", n, ok)
	}
}

func TestParseIntOctalPrefix(t *testing.T) {
	n, ok := ParseInt("0755")
	if !ok || n != 0o755 {
		t.Fatalf("expected (%d, true), got (%d, %v)", 0o755, n, ok)
	}
}

func TestParseIntTrailingGarbage(t *testing.T) {
	if _, ok := ParseInt("42abc"); ok {
		t.Fatal("expected failure on trailing characters")
	}
}

func TestParseIntEmpty(t *testing.T) {
	if _, ok := ParseInt(""); ok {
		t.Fatal("expected failure on empty input")
	}
}

// Whitespace is rejected rather than skipped; the whole token must be
// numeric.
func TestParseIntLeadingWhitespace(t *testing.T) {
	if _, ok := ParseInt(" 5"); ok {
		t.Fatal("expected failure on leading whitespace")
	}
}

func TestParseIntTrailingWhitespace(t *testing.T) {
	if _, ok := ParseInt("5 "); ok {
		t.Fatal("expected failure on trailing whitespace")
	}
}

func TestParseIntOverflow(t *testing.T) {
	if _, ok := ParseInt("9223372036854775808"); ok {
		t.Fatal("expected failure on 64-bit overflow")
	}
}

func TestParseIntMaxInt64(t *testing.T) {
	n, ok := ParseInt("9223372036854775807")
	if !ok || int64(n) != 9223372036854775807 {
		t.Fatalf("expected max int64, got (%d, %v)", n, ok)
	}
}
