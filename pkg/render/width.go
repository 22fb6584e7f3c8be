package render

import "github.com/camtisocial/pacfetch/pkg/components"

// ContentWidth computes the shared width assigned to every item whose width
// setting is "content": the maximum visible footprint over the full ordered
// item list. Stat lines contribute their complete text; stacked titles
// contribute their resolved text; embedded titles contribute their caps plus
// spaced text, or a one-cell minimum fill when the text is empty. The result
// never drops below 1.
func ContentWidth(items []Item, glyph string) int {
	width := 1
	for _, it := range items {
		if w := minFootprint(it, glyph); w > width {
			width = w
		}
	}
	return width
}

func minFootprint(it Item, glyph string) int {
	switch it.Kind {
	case ItemStat:
		return components.VisibleLen(it.Stat.Label + glyph + statValue(it.Stat))
	case ItemTitle:
		switch it.Title.Style {
		case Embedded:
			w := components.VisibleLen(it.Title.LeftCap) + components.VisibleLen(it.Title.RightCap)
			if it.Text != "" {
				return w + 2 + components.VisibleLen(it.Text)
			}
			return w + 1
		default:
			return components.VisibleLen(it.Text)
		}
	}
	return 0
}

// statValue applies the uniform absent-value policy: a stat with no data
// renders the "-" placeholder, in both layout passes.
func statValue(e Entry) string {
	if !e.HasValue {
		return "-"
	}
	return e.Value
}

// resolveWidth turns a title's width setting into its rendered cell count.
// contentWidth is the pass-1 result; natural widths floor at 1 so the
// separator line is never empty.
func resolveWidth(spec TitleSpec, text string, contentWidth int) int {
	switch spec.Width.Mode {
	case WidthContent:
		return contentWidth
	case WidthFixed:
		if spec.Width.Fixed < 1 {
			return 1
		}
		return spec.Width.Fixed
	default:
		w := minFootprint(Item{Kind: ItemTitle, Title: spec, Text: text}, "")
		if w < 1 {
			return 1
		}
		return w
	}
}
