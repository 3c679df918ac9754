package strtool

// trimmable marks the bytes stripped by the trim functions: space, tab,
// and newline. Carriage return is deliberately not included; callers
// dealing with CRLF input strip it themselves.
var trimmable = [256]bool{' ': true, '\t': true, '\n': true}

// Trim returns s with leading and trailing spaces, tabs, and newlines
// removed. The result is a slice of s; no allocation occurs.
func Trim(s string) string {
	return TrimLeft(TrimRight(s))
}

// TrimLeft returns s with leading spaces, tabs, and newlines removed.
func TrimLeft(s string) string {
	i := 0
	for i < len(s) && trimmable[s[i]] {
		i++
	}
	return s[i:]
}

// TrimRight returns s with trailing spaces, tabs, and newlines removed.
func TrimRight(s string) string {
	n := len(s)
	for n > 0 && trimmable[s[n-1]] {
		n--
	}
	return s[:n]
}
