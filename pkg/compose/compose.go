// Package compose merges rendered stat/title lines with a pre-rendered
// ASCII-art block into the final printed rows.
package compose

import (
	"strings"

	"github.com/camtisocial/pacfetch/pkg/components"
)

const (
	// leftMargin sits before the art block.
	leftMargin = " "
	// gutter separates the art block from the stat column.
	gutter = "   "
)

// Compose zips art rows and stat rows side by side. Row i is the art row
// (or a blank row of the art's width once the art is exhausted), the
// gutter, then the stat row (or nothing once stats are exhausted). The
// whole block is bracketed by one leading and one trailing blank line.
// With no art at all, the stat lines pass through unindented.
func Compose(art, lines []string) []string {
	out := make([]string, 0, len(art)+len(lines)+2)
	out = append(out, "")

	if len(art) == 0 {
		out = append(out, lines...)
		return append(out, "")
	}

	artWidth := 0
	for _, row := range art {
		if w := components.VisibleLen(row); w > artWidth {
			artWidth = w
		}
	}
	blank := strings.Repeat(" ", artWidth)

	rows := len(art)
	if len(lines) > rows {
		rows = len(lines)
	}
	for i := 0; i < rows; i++ {
		artRow := blank
		if i < len(art) {
			artRow = art[i]
		}
		statRow := ""
		if i < len(lines) {
			statRow = lines[i]
		}
		out = append(out, leftMargin+artRow+gutter+statRow)
	}
	return append(out, "")
}
