// Package color resolves pacfetch color tokens to terminal colors and
// applies them as ANSI escape sequences.
//
// A token is one of:
//   - "none" (any case): an explicit request for no coloring
//   - a named terminal color ("yellow", "dark_grey", "bright_cyan", ...)
//   - a hex triple ("#RRGGBB")
//
// Resolution never fails hard: malformed or unknown tokens resolve to no
// color and return an error the caller is expected to log as a warning.
package color

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// named maps recognized color names to indexed terminal colors. The plain
// names map to the dark half of the palette, matching pacman-era terminal
// conventions; bright_ prefixed names map to the high-intensity half.
var named = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"dark_red":       termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"dark_green":     termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"dark_yellow":    termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"dark_blue":      termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"dark_magenta":   termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"dark_cyan":      termenv.ANSICyan,
	"grey":           termenv.ANSIWhite,
	"gray":           termenv.ANSIWhite,
	"dark_grey":      termenv.ANSIBrightBlack,
	"dark_gray":      termenv.ANSIBrightBlack,
	"bright_red":     termenv.ANSIBrightRed,
	"bright_green":   termenv.ANSIBrightGreen,
	"bright_yellow":  termenv.ANSIBrightYellow,
	"bright_blue":    termenv.ANSIBrightBlue,
	"bright_magenta": termenv.ANSIBrightMagenta,
	"bright_cyan":    termenv.ANSIBrightCyan,
	"white":          termenv.ANSIBrightWhite,
	"bright_white":   termenv.ANSIBrightWhite,
}

// Parse resolves a color token. A nil color with a nil error is the
// explicit "none" answer; a nil color with a non-nil error means the token
// was not understood and the element should render uncolored.
func Parse(token string) (termenv.Color, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case s == "none":
		return nil, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	default:
		if c, ok := named[s]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("color: unknown color %q", token)
	}
}

// parseHex validates a "#RRGGBB" token. Wrong length or non-hex digits are
// rejected; there is no short form.
func parseHex(s string) (termenv.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("color: bad hex color %q", s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		ok := c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
		if !ok {
			return nil, fmt.Errorf("color: bad hex color %q", s)
		}
	}
	return termenv.RGBColor("#" + hex), nil
}

// Foreground colors s with c. A nil color is the identity: any styling
// already embedded in s is left untouched.
func Foreground(s string, c termenv.Color) string {
	if c == nil {
		return s
	}
	return "\x1b[" + c.Sequence(false) + "m" + s + "\x1b[0m"
}

// Background colors the background of s with c. Nil is the identity.
func Background(s string, c termenv.Color) string {
	if c == nil {
		return s
	}
	return "\x1b[" + c.Sequence(true) + "m" + s + "\x1b[0m"
}

// Bold wraps s in bold escape sequences.
func Bold(s string) string {
	return "\x1b[1m" + s + "\x1b[22m"
}
