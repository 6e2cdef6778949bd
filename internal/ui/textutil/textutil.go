// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Wrap breaks s into lines no wider than width columns, splitting on spaces.
// A single word wider than width is truncated rather than split.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range strings.Fields(s) {
		w := VisualWidth(word)
		if w > width {
			word = Truncate(word, width)
			w = VisualWidth(word)
		}
		switch {
		case curWidth == 0:
			cur.WriteString(word)
			curWidth = w
		case curWidth+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + w
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curWidth = w
		}
	}
	if curWidth > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
