// Package config loads the pacfetch TOML configuration and validates it
// into the shapes the render engine consumes. Malformed values never reach
// the engine: every bad style, width, align, or stat key is replaced by its
// default here, with a warning, so the worst outcome of a broken config is
// a plainer block, not a failed run.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/camtisocial/pacfetch/pkg/render"
	"github.com/camtisocial/pacfetch/pkg/stats"
)

// Config is the validated configuration.
type Config struct {
	// Stats is the ordered list of declared stat/title references.
	Stats []stats.Ref
	// Ascii selects the art block: a built-in name, NONE, raw art, or a path.
	Ascii string
	// AsciiColor is the color token applied to art rows.
	AsciiColor string
	// Glyph separates stat labels from values.
	Glyph string
	// Title is the legacy single title referenced by a bare "title" entry.
	Title render.TitleSpec
	// Titles holds the named title definitions for title.<name> references.
	Titles map[string]render.TitleSpec
	// DiskPath is the mount point the disk stat reports on.
	DiskPath string
}

// Load reads configuration from the standard path, falling back to defaults
// when no file exists. Search order:
//  1. $XDG_CONFIG_HOME/pacfetch/pacfetch.toml
//  2. ~/.config/pacfetch/pacfetch.toml
func Load(warn render.WarnSink) (*Config, error) {
	p := Path()
	if p == "" {
		return Default(), nil
	}
	return LoadFromFile(p, warn)
}

// LoadFromFile reads configuration from a specific file. A missing file
// yields the defaults.
func LoadFromFile(path string, warn render.WarnSink) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data, warn)
}

// Parse decodes and validates raw TOML config bytes.
func Parse(data []byte, warn render.WarnSink) (*Config, error) {
	if warn == nil {
		warn = render.NopSink{}
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return fc.validate(warn), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Stats:      defaultStats(),
		Ascii:      "PACMAN_DEFAULT",
		AsciiColor: "yellow",
		Glyph:      ": ",
		Title:      defaultTitleSpec(),
		Titles:     map[string]render.TitleSpec{"main": defaultTitleSpec()},
		DiskPath:   "/",
	}
}

// Path returns the config file location under the user's config home, or
// "" when no home directory can be determined.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pacfetch", "pacfetch.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pacfetch", "pacfetch.toml")
}

// EnsureDefault writes the commented default config file if none exists
// yet. Failures are not fatal; pacfetch runs fine on built-in defaults.
func EnsureDefault() {
	p := Path()
	if p == "" {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(p, []byte(defaultConfigTOML), 0o644)
}

func defaultStats() []stats.Ref {
	refs := []stats.Ref{{Kind: stats.RefNamedTitle, Name: "main"}}
	for _, id := range stats.All() {
		refs = append(refs, stats.Ref{Kind: stats.RefStat, Stat: id})
	}
	return refs
}

func defaultTitleSpec() render.TitleSpec {
	return render.TitleSpec{
		Text:      "default",
		TextColor: "bright_yellow",
		LineColor: "none",
		Style:     render.Stacked,
		Width:     render.Width{Mode: render.WidthTitle},
		Align:     render.AlignDefault,
		Line:      "-",
	}
}
