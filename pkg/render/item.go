// Package render is the pacfetch layout engine. It turns an ordered list of
// declared stat/title references plus a stats snapshot into the final text
// lines, in two passes: a width pass that computes the shared content width
// across every item, then a line pass that renders each item against the
// resolved widths. Item order is identical in both passes; that ordering is
// what makes the shared "content" width correct.
package render

import (
	"fmt"
	"strings"

	"github.com/camtisocial/pacfetch/pkg/stats"
)

// Style selects how a title occupies its lines.
type Style int

const (
	// Stacked renders the title text on its own line with a separator
	// line beneath it.
	Stacked Style = iota
	// Embedded renders the title text inside the separator line itself,
	// flanked by cap glyphs.
	Embedded
)

// WidthMode selects how a title's width is resolved.
type WidthMode int

const (
	// WidthTitle sizes the title to its own content.
	WidthTitle WidthMode = iota
	// WidthContent sizes the title to the shared content width.
	WidthContent
	// WidthFixed sizes the title to an explicit cell count.
	WidthFixed
)

// Width is a resolved title width setting.
type Width struct {
	Mode  WidthMode
	Fixed int // cells, valid when Mode == WidthFixed
}

// Align selects horizontal placement of title text. AlignDefault defers to
// the style: stacked titles align left, embedded titles center.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TitleSpec is a fully validated title definition. Color fields hold raw
// tokens; they are resolved during the line pass so that bad tokens degrade
// the one element instead of the whole config. The config loader guarantees
// Style, Width, and Align carry only legal values.
type TitleSpec struct {
	Text      string // text template: "default", "pacman_ver", "pacfetch_ver", "", or a literal
	TextColor string
	LineColor string
	Style     Style
	Width     Width
	Align     Align
	Line      string // separator pattern, possibly multi-character
	LeftCap   string
	RightCap  string
}

// Entry is one stat prepared for rendering.
type Entry struct {
	ID       stats.ID
	Label    string
	Value    string
	HasValue bool
}

// ItemKind discriminates the render item variants.
type ItemKind int

const (
	ItemStat ItemKind = iota
	ItemTitle
	ItemUnresolved
)

// Item is the order-preserving unit consumed by both layout passes.
type Item struct {
	Kind  ItemKind
	Stat  Entry     // when Kind == ItemStat
	Title TitleSpec // when Kind == ItemTitle
	Text  string    // resolved title text, when Kind == ItemTitle
	Name  string    // unresolved reference name, when Kind == ItemUnresolved
}

// BuildOptions carries everything item construction needs beyond the
// declared references themselves.
type BuildOptions struct {
	// Titles maps named title definitions from the config.
	Titles map[string]TitleSpec
	// Legacy is the single [display.title] definition old configs use.
	Legacy TitleSpec
	// DiskPath completes the disk stat label.
	DiskPath string
	// Version is the pacfetch version used by title text templates.
	Version string
}

// BuildItems resolves declared references into the ordered item list. Named
// title references that match nothing become Unresolved items and log
// exactly one warning each; they render as zero lines later. Use of the
// legacy bare "title" reference logs a deprecation warning but still works.
func BuildItems(refs []stats.Ref, snap *stats.Snapshot, opts BuildOptions, warn WarnSink) []Item {
	items := make([]Item, 0, len(refs))
	legacyWarned := false

	for _, ref := range refs {
		switch ref.Kind {
		case stats.RefStat:
			items = append(items, Item{Kind: ItemStat, Stat: buildEntry(ref.Stat, snap, opts.DiskPath)})

		case stats.RefNamedTitle:
			spec, ok := opts.Titles[ref.Name]
			if !ok {
				warn.Warnf("title %q is not defined under [display.titles]", ref.Name)
				items = append(items, Item{Kind: ItemUnresolved, Name: ref.Name})
				continue
			}
			items = append(items, Item{
				Kind:  ItemTitle,
				Title: spec,
				Text:  resolveTitleText(spec, snap.PacmanVersion, opts.Version),
			})

		case stats.RefLegacyTitle:
			if !legacyWarned {
				warn.Warnf("bare \"title\" in the stats list is deprecated, use a named title.<name> reference")
				legacyWarned = true
			}
			items = append(items, Item{
				Kind:  ItemTitle,
				Title: opts.Legacy,
				Text:  resolveTitleText(opts.Legacy, snap.PacmanVersion, opts.Version),
			})
		}
	}
	return items
}

func buildEntry(id stats.ID, snap *stats.Snapshot, diskPath string) Entry {
	label := id.Label()
	if id == stats.Disk && diskPath != "" {
		label = fmt.Sprintf("Disk (%s)", diskPath)
	}
	v, ok := snap.FormatValue(id)
	return Entry{ID: id, Label: label, Value: v, HasValue: ok}
}

// resolveTitleText expands a title text template. It is total: every input
// maps to some display text.
func resolveTitleText(spec TitleSpec, pacmanVersion *string, version string) string {
	switch spec.Text {
	case "":
		return ""
	case "default":
		if pacmanVersion != nil {
			return *pacmanVersion
		}
		return "pacfetch " + version
	case "pacman_ver":
		if pacmanVersion == nil {
			return "Pacman"
		}
		full := *pacmanVersion
		if i := strings.Index(full, " - "); i >= 0 {
			return strings.TrimSpace(full[:i])
		}
		return full
	case "pacfetch_ver":
		return "pacfetch " + version
	default:
		return spec.Text
	}
}
