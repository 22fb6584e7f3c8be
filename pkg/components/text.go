package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the width of s in terminal cells. ANSI escape
// sequences contribute nothing; wide characters (CJK, emoji) count as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most width visible cells, keeping any ANSI escape
// sequences that occur before the cut point. Returns s unchanged when it
// already fits.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// Pad places s within width visible cells according to align, filling the
// remainder with spaces. When s does not fit, it is returned unchanged
// rather than truncated. Center alignment puts the smaller half of the
// padding on the left.
func Pad(s string, width int, align Align) string {
	gap := width - VisibleLen(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Fill repeats pattern end-to-end until it covers at least width visible
// cells, then cuts the result to exactly width. The pattern may be any
// number of characters, including multi-cell ones; the cut happens on the
// fully repeated string so partial repeats at the edge are handled by the
// ANSI-aware truncation, not by dropping them mid-construction. An empty
// or zero-width pattern falls back to spaces.
func Fill(pattern string, width int) string {
	if width <= 0 {
		return ""
	}
	pw := VisibleLen(pattern)
	if pw <= 0 {
		return strings.Repeat(" ", width)
	}
	reps := width/pw + 1
	return Truncate(strings.Repeat(pattern, reps), width)
}
