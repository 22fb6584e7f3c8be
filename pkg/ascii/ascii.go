// Package ascii resolves the configured ASCII art setting into a block of
// rows normalized to a uniform visible width.
package ascii

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/camtisocial/pacfetch/pkg/components"
)

// Get resolves an art setting: "NONE" disables art, a string containing
// newlines is raw art, a path-looking string loads from file, and anything
// else selects a built-in (unknown names fall back to the default). A file
// that cannot be read also falls back to the default; the returned error
// says why, and the rows are still usable.
func Get(setting string) ([]string, error) {
	if setting == "NONE" {
		return nil, nil
	}

	if strings.Contains(setting, "\n") {
		return Normalize(strings.Split(strings.TrimRight(setting, "\n"), "\n")), nil
	}

	if strings.HasPrefix(setting, "/") || strings.HasPrefix(setting, "~") || strings.HasPrefix(setting, ".") {
		rows, err := loadFile(setting)
		if err != nil {
			return Normalize(builtin("PACMAN_DEFAULT")), fmt.Errorf("ascii: load %q: %w", setting, err)
		}
		return Normalize(rows), nil
	}

	return Normalize(builtin(setting)), nil
}

// Normalize pads every row with trailing spaces to the block's maximum
// visible width, so composition can treat the art as a rectangle.
func Normalize(rows []string) []string {
	width := 0
	for _, row := range rows {
		if w := components.VisibleLen(row); w > width {
			width = w
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = components.Pad(row, width, components.AlignLeft)
	}
	return out
}

func loadFile(path string) ([]string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

func builtin(name string) []string {
	switch name {
	case "PACMAN_SMALL":
		return append([]string(nil), pacmanSmall[:]...)
	default:
		return append([]string(nil), pacmanDefault[:]...)
	}
}
