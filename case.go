package strtool

// ToLower returns s with ASCII uppercase letters mapped to lowercase.
// All other bytes pass through unchanged. When no byte needs mapping,
// s is returned as-is without allocating.
func ToLower(s string) string {
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			b := []byte(s)
			for ; i < len(b); i++ {
				if isUpper(b[i]) {
					b[i] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// ToUpper returns s with ASCII lowercase letters mapped to uppercase.
// All other bytes pass through unchanged. When no byte needs mapping,
// s is returned as-is without allocating.
func ToUpper(s string) string {
	for i := 0; i < len(s); i++ {
		if isLower(s[i]) {
			b := []byte(s)
			for ; i < len(b); i++ {
				if isLower(b[i]) {
					b[i] -= 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
