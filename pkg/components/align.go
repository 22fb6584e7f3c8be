// Package components provides ANSI-aware text primitives for the pacfetch
// layout engine: visible-width measurement, padding, truncation, and
// repeated-pattern fills. All widths are terminal cell counts, never byte
// or rune counts.
package components

// Align controls horizontal placement of text within a fixed width.
type Align int

const (
	// AlignLeft places text at the left edge.
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight places text at the right edge.
	AlignRight
)
