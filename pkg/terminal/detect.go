// Package terminal decides whether color output is appropriate for the
// current invocation. Detection is environment-only: no terminal queries,
// no I/O beyond the isatty check.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether styled output should be emitted on stdout.
// Color is disabled when NO_COLOR is set (https://no-color.org), when TERM
// is "dumb", or when stdout is not a terminal (a pipe or a file).
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
