// pacfetch prints pacman package-manager statistics beside ASCII art.
//
// It queries the local pacman installation (installed packages, pending
// upgrades, cache and orphan sizes, last system update) and renders the
// results as a fetch-style block: art on the left, a titled stat column on
// the right, and the terminal palette underneath.
//
// Usage:
//
//	pacfetch [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/pacfetch/pacfetch.toml)
//	-ascii string   Override the configured art (builtin name, NONE, or a file path)
//	-color string   Override the configured art color token
//	-no-color       Disable all styled output
//	-json           Print the collected stats as JSON and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/camtisocial/pacfetch/pkg/ascii"
	"github.com/camtisocial/pacfetch/pkg/color"
	"github.com/camtisocial/pacfetch/pkg/compose"
	"github.com/camtisocial/pacfetch/pkg/config"
	"github.com/camtisocial/pacfetch/pkg/pacman"
	"github.com/camtisocial/pacfetch/pkg/render"
	"github.com/camtisocial/pacfetch/pkg/stats"
	"github.com/camtisocial/pacfetch/pkg/terminal"
)

var version = "1.0.0"

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		asciiFlag   = flag.String("ascii", "", "Override the configured art (builtin name, NONE, or a file path)")
		colorFlag   = flag.String("color", "", "Override the configured art color token")
		noColor     = flag.Bool("no-color", false, "Disable all styled output")
		jsonOut     = flag.Bool("json", false, "Print the collected stats as JSON and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pacfetch %s\n", version)
		os.Exit(0)
	}

	logger, closeLog := setupLogging(*verbose)
	defer closeLog()
	sink := slogSink{log: logger}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath, sink)
	} else {
		config.EnsureDefault()
		cfg, err = config.Load(sink)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *asciiFlag != "" {
		cfg.Ascii = *asciiFlag
	}
	if *colorFlag != "" {
		cfg.AsciiColor = *colorFlag
	}

	mgr := pacman.NewManager(cfg.DiskPath, logger)
	snap := mgr.Collect(cfg.Stats)

	if *jsonOut {
		if err := printJSON(snap, cfg.Stats); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := render.Options{
		Glyph:   cfg.Glyph,
		NoColor: *noColor || !terminal.ColorEnabled(),
	}

	items := render.BuildItems(cfg.Stats, snap, render.BuildOptions{
		Titles:   cfg.Titles,
		Legacy:   cfg.Title,
		DiskPath: cfg.DiskPath,
		Version:  version,
	}, sink)
	lines := render.Render(items, opts, sink)

	if !opts.NoColor {
		lines = append(lines, "")
		lines = append(lines, render.PaletteRows()...)
	}

	art := artRows(cfg, opts, sink)
	for _, row := range compose.Compose(art, lines) {
		fmt.Println(row)
	}
}

// artRows resolves and colorizes the art block. Art failures degrade to
// the built-in default; they never abort the run.
func artRows(cfg *config.Config, opts render.Options, sink slogSink) []string {
	rows, err := ascii.Get(cfg.Ascii)
	if err != nil {
		sink.Warnf("%v", err)
	}
	if opts.NoColor || len(rows) == 0 {
		return rows
	}

	c, err := color.Parse(cfg.AsciiColor)
	if err != nil {
		sink.Warnf("ignoring art color %q: not a known color name or #RRGGBB value", cfg.AsciiColor)
		return rows
	}
	for i, row := range rows {
		rows[i] = color.Foreground(row, c)
	}
	return rows
}

// printJSON writes the collected values for the declared stats, keyed by
// their config names. Absent values are omitted.
func printJSON(snap *stats.Snapshot, refs []stats.Ref) error {
	out := make(map[string]string)
	for _, ref := range refs {
		if ref.Kind != stats.RefStat {
			continue
		}
		if v, ok := snap.FormatValue(ref.Stat); ok {
			out[ref.Stat.Key()] = v
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// setupLogging writes warnings to stderr and, when possible, to a log file
// under the user's cache directory. The returned closer is safe to call
// even when no file was opened.
func setupLogging(verbose bool) (*slog.Logger, func()) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if dir, err := os.UserCacheDir(); err == nil {
		path := filepath.Join(dir, "pacfetch", "pacfetch.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w = io.MultiWriter(os.Stderr, f)
				closeLog = func() { f.Close() }
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, closeLog
}

// slogSink adapts the structured logger to the render engine's warning
// interface.
type slogSink struct {
	log *slog.Logger
}

func (s slogSink) Warnf(format string, args ...any) {
	s.log.Warn(fmt.Sprintf(format, args...))
}
