package render

// Options controls the line pass.
type Options struct {
	// Glyph separates stat labels from values, ": " by default.
	Glyph string
	// NoColor suppresses every styling sequence the engine would emit.
	// Color tokens are still parsed so bad ones are reported.
	NoColor bool
}

// Render turns the ordered item list into the final stat/title lines. Pass
// one folds the list into the shared content width; pass two maps the same
// list, in the same order, into lines. Rendering the same items twice
// yields byte-identical output. Unresolved items contribute nothing; their
// warning was already logged when the list was built.
func Render(items []Item, opts Options, warn WarnSink) []string {
	if warn == nil {
		warn = NopSink{}
	}
	contentWidth := ContentWidth(items, opts.Glyph)

	var lines []string
	for _, it := range items {
		switch it.Kind {
		case ItemStat:
			lines = append(lines, renderStat(it.Stat, opts.Glyph, opts))
		case ItemTitle:
			width := resolveWidth(it.Title, it.Text, contentWidth)
			lines = append(lines, renderTitle(it.Title, it.Text, width, opts, warn)...)
		}
	}
	return lines
}
