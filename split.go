package strtool

import "strings"

// Split slices s into all segments separated by any byte in delims.
// Every delimiter occurrence is a split point: consecutive delimiters
// yield empty segments and a trailing delimiter yields a trailing empty
// segment. An input without any delimiter, including the empty string,
// yields a single-element result equal to the input.
func Split(s, delims string) []string {
	var tokens []string
	for {
		i := strings.IndexAny(s, delims)
		if i < 0 {
			return append(tokens, s)
		}
		tokens = append(tokens, s[:i])
		s = s[i+1:]
	}
}

// HasPrefix reports whether s begins with prefix. A prefix longer than s
// is simply not a prefix; that is never an error.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// HasSuffix reports whether s ends with suffix.
func HasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
