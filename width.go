package strtool

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how [Pad] distributes padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Width returns the display width of s in terminal columns. East Asian
// full-width runes count as two columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Pad pads s with spaces to the given display width. Strings already at
// or beyond the width are returned unchanged.
func Pad(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// Truncate shortens s to at most width display columns, appending tail
// when truncation occurs. The tail counts against the width. Strings
// that already fit are returned unchanged.
func Truncate(s string, width int, tail string) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, tail)
}

// Wrap splits s into lines of at most width display columns. No word
// breaking is attempted; runes are packed until the width is reached.
// A width of zero or less disables wrapping.
func Wrap(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if runewidth.StringWidth(line) == 0 && len(s) > 0 {
			// Safety: advance at least one rune to avoid an infinite loop
			// when a full-width rune doesn't fit in the width.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}
