package config

import (
	"github.com/camtisocial/pacfetch/pkg/render"
	"github.com/camtisocial/pacfetch/pkg/stats"
)

// fileConfig is the raw TOML shape before validation. Optional string
// fields use pointers so an explicitly empty value (an empty title text,
// say) is distinguishable from an absent one.
type fileConfig struct {
	Display displayConfig `toml:"display"`
	Disk    diskConfig    `toml:"disk"`
}

type displayConfig struct {
	Stats      []string               `toml:"stats"`
	Ascii      *string                `toml:"ascii"`
	AsciiColor *string                `toml:"ascii_color"`
	Glyph      glyphConfig            `toml:"glyph"`
	Title      *titleConfig           `toml:"title"`
	Titles     map[string]titleConfig `toml:"titles"`
}

type glyphConfig struct {
	Glyph *string `toml:"glyph"`
}

type diskConfig struct {
	Path *string `toml:"path"`
}

type titleConfig struct {
	Text      *string    `toml:"text"`
	TextColor *string    `toml:"text_color"`
	LineColor *string    `toml:"line_color"`
	Style     *string    `toml:"style"`
	Width     widthValue `toml:"width"`
	Align     *string    `toml:"align"`
	Line      *string    `toml:"line"`
	LeftCap   *string    `toml:"left_cap"`
	RightCap  *string    `toml:"right_cap"`
}

// widthValue accepts either a keyword ("title", "content") or a positive
// integer. Anything else is remembered as malformed and defaulted during
// validation; decoding itself never fails over it.
type widthValue struct {
	set   bool
	bad   bool
	mode  render.WidthMode
	fixed int
}

// UnmarshalTOML implements toml.Unmarshaler.
func (w *widthValue) UnmarshalTOML(v any) error {
	w.set = true
	switch t := v.(type) {
	case string:
		switch t {
		case "title":
			w.mode = render.WidthTitle
		case "content":
			w.mode = render.WidthContent
		default:
			w.bad = true
		}
	case int64:
		if t > 0 {
			w.mode = render.WidthFixed
			w.fixed = int(t)
		} else {
			w.bad = true
		}
	default:
		w.bad = true
	}
	return nil
}

// validate turns the raw file shape into a validated Config, defaulting
// every malformed or missing value.
func (fc *fileConfig) validate(warn render.WarnSink) *Config {
	cfg := Default()

	if fc.Display.Ascii != nil {
		cfg.Ascii = *fc.Display.Ascii
	}
	if fc.Display.AsciiColor != nil {
		cfg.AsciiColor = *fc.Display.AsciiColor
	}
	if fc.Display.Glyph.Glyph != nil {
		cfg.Glyph = *fc.Display.Glyph.Glyph
	}
	if fc.Disk.Path != nil && *fc.Disk.Path != "" {
		cfg.DiskPath = *fc.Disk.Path
	}

	if fc.Display.Title != nil {
		cfg.Title = fc.Display.Title.validate("display.title", warn)
	}
	if len(fc.Display.Titles) > 0 {
		cfg.Titles = make(map[string]render.TitleSpec, len(fc.Display.Titles))
		for name, tc := range fc.Display.Titles {
			cfg.Titles[name] = tc.validate("display.titles."+name, warn)
		}
	}

	if fc.Display.Stats != nil {
		cfg.Stats = parseStatList(fc.Display.Stats, warn)
	}
	return cfg
}

// parseStatList parses declared references, dropping unrecognized tokens
// with a warning so one typo cannot blank the whole display.
func parseStatList(entries []string, warn render.WarnSink) []stats.Ref {
	refs := make([]stats.Ref, 0, len(entries))
	for _, e := range entries {
		ref, err := stats.ParseRef(e)
		if err != nil {
			warn.Warnf("skipping stats entry %q: %v", e, err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

func (tc *titleConfig) validate(where string, warn render.WarnSink) render.TitleSpec {
	spec := defaultTitleSpec()

	if tc.Text != nil {
		spec.Text = *tc.Text
	}
	if tc.TextColor != nil {
		spec.TextColor = *tc.TextColor
	}
	if tc.LineColor != nil {
		spec.LineColor = *tc.LineColor
	}
	if tc.Line != nil && *tc.Line != "" {
		spec.Line = *tc.Line
	}
	if tc.LeftCap != nil {
		spec.LeftCap = *tc.LeftCap
	}
	if tc.RightCap != nil {
		spec.RightCap = *tc.RightCap
	}

	if tc.Style != nil {
		switch *tc.Style {
		case "stacked":
			spec.Style = render.Stacked
		case "embedded":
			spec.Style = render.Embedded
		default:
			warn.Warnf("%s: unknown style %q, using stacked", where, *tc.Style)
		}
	}

	if tc.Width.set {
		if tc.Width.bad {
			warn.Warnf("%s: width must be \"title\", \"content\", or a positive integer; using title", where)
		} else {
			spec.Width = render.Width{Mode: tc.Width.mode, Fixed: tc.Width.fixed}
		}
	}

	if tc.Align != nil {
		switch *tc.Align {
		case "left":
			spec.Align = render.AlignLeft
		case "center":
			spec.Align = render.AlignCenter
		case "right":
			spec.Align = render.AlignRight
		default:
			warn.Warnf("%s: unknown align %q, using the style default", where, *tc.Align)
		}
	}

	return spec
}
