package base

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Truncate shortens s to at most maxWidth cells, ending with an ellipsis
// when anything was cut. Newlines are flattened to spaces.
func Truncate(s string, maxWidth int) string {
	s = strings.Join(strings.Fields(s), " ")
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if maxWidth < 3 {
		return string(runes[:maxWidth])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes)) > maxWidth-3 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
