package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsBlank returns true if s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// HasSurroundingSpace returns true if s has leading or trailing whitespace.
func HasSurroundingSpace(s string) bool {
	return s != strings.TrimSpace(s)
}
