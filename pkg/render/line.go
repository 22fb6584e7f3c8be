package render

import (
	"github.com/muesli/termenv"

	"github.com/camtisocial/pacfetch/pkg/color"
	"github.com/camtisocial/pacfetch/pkg/components"
)

// renderStat produces the single line for a stat entry. Labels render bold
// bright yellow; values render unstyled.
func renderStat(e Entry, glyph string, opts Options) string {
	label := e.Label
	if !opts.NoColor {
		label = color.Foreground(color.Bold(label), termenv.ANSIBrightYellow)
	}
	return label + glyph + statValue(e)
}

// renderTitle produces the one or two lines for a title at its resolved
// width. The text segment and the separator/fill segment are colored
// independently; a "none" token leaves any styling already present in the
// text untouched.
func renderTitle(spec TitleSpec, text string, width int, opts Options, warn WarnSink) []string {
	textColor := resolveToken(spec.TextColor, opts, warn)
	lineColor := resolveToken(spec.LineColor, opts, warn)

	if spec.Style == Embedded {
		return []string{embeddedLine(spec, text, width, textColor, lineColor, opts)}
	}
	return stackedLines(spec, text, width, textColor, lineColor, opts)
}

// stackedLines renders the text line (when text is non-empty) padded to
// width, then the full-width separator beneath it.
func stackedLines(spec TitleSpec, text string, width int, textColor, lineColor termenv.Color, opts Options) []string {
	var lines []string
	if text != "" {
		styled := styleTitleText(text, textColor, opts)
		lines = append(lines, components.Pad(styled, width, alignFor(spec, components.AlignLeft)))
	}
	lines = append(lines, colorSegment(components.Fill(spec.Line, width), lineColor))
	return lines
}

// embeddedLine renders the title inside its separator line. The inner span
// between the caps holds either pure fill (empty text) or " text " with the
// leftover fill split per the alignment. Text wider than the inner span is
// allowed to overflow; the fill segments collapse to nothing.
func embeddedLine(spec TitleSpec, text string, width int, textColor, lineColor termenv.Color, opts Options) string {
	inner := width - components.VisibleLen(spec.LeftCap) - components.VisibleLen(spec.RightCap)
	if inner < 0 {
		inner = 0
	}

	if text == "" {
		return colorSegment(spec.LeftCap+components.Fill(spec.Line, inner)+spec.RightCap, lineColor)
	}

	remaining := inner - components.VisibleLen(text) - 2
	if remaining < 0 {
		remaining = 0
	}

	var left, right int
	switch alignFor(spec, components.AlignCenter) {
	case components.AlignLeft:
		left = min(1, remaining)
		right = remaining - left
	case components.AlignRight:
		right = min(1, remaining)
		left = remaining - right
	default:
		left = remaining / 2
		right = remaining - left
	}

	return colorSegment(spec.LeftCap+components.Fill(spec.Line, left), lineColor) +
		" " + styleTitleText(text, textColor, opts) + " " +
		colorSegment(components.Fill(spec.Line, right)+spec.RightCap, lineColor)
}

// alignFor maps a title's alignment setting onto a components alignment,
// falling back to the style's default when unset.
func alignFor(spec TitleSpec, def components.Align) components.Align {
	switch spec.Align {
	case AlignLeft:
		return components.AlignLeft
	case AlignCenter:
		return components.AlignCenter
	case AlignRight:
		return components.AlignRight
	default:
		return def
	}
}

// resolveToken parses a color token, logging a warning for anything it does
// not understand. Unknown and malformed tokens degrade to no color.
func resolveToken(token string, opts Options, warn WarnSink) termenv.Color {
	if token == "" {
		return nil
	}
	c, err := color.Parse(token)
	if err != nil {
		warn.Warnf("ignoring color token %q: not a known color name or #RRGGBB value", token)
		return nil
	}
	if opts.NoColor {
		return nil
	}
	return c
}

func styleTitleText(text string, c termenv.Color, opts Options) string {
	if opts.NoColor {
		return text
	}
	return color.Foreground(color.Bold(text), c)
}

func colorSegment(s string, c termenv.Color) string {
	if s == "" {
		return s
	}
	return color.Foreground(s, c)
}
