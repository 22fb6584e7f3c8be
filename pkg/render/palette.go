package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/camtisocial/pacfetch/pkg/color"
)

// paletteCell is the width of one color swatch in the palette block.
const paletteCell = "   "

// PaletteRows returns the two-row terminal color strip shown beneath the
// stats: eight cells of the normal palette, then eight of the bright one.
func PaletteRows() []string {
	var rows [2]strings.Builder
	for i := 0; i < 8; i++ {
		rows[0].WriteString(color.Background(paletteCell, termenv.ANSIColor(i)))
		rows[1].WriteString(color.Background(paletteCell, termenv.ANSIColor(i+8)))
	}
	return []string{rows[0].String(), rows[1].String()}
}
