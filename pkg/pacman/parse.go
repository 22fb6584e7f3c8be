package pacman

import (
	"strconv"
	"strings"
	"time"
)

// parseVersion extracts the "Pacman vX.Y.Z - libalpm vA.B.C" line from
// pacman --version output.
func parseVersion(out string) *string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Pacman v") || !strings.Contains(line, "libalpm v") {
			continue
		}
		if i := strings.Index(line, "Pacman v"); i >= 0 {
			v := strings.TrimSpace(line[i:])
			return &v
		}
	}
	return nil
}

func countLines(out string) int {
	return len(nonEmptyLines(out))
}

func nonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseUpgradableNames extracts package names from pacman -Qu output of
// the form "name oldver -> newver".
func parseUpgradableNames(out string) []string {
	var names []string
	for _, line := range nonEmptyLines(out) {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names
}

// parseInfoSizes extracts every occurrence of a sized field (for example
// "Installed Size : 12.34 MiB") from pacman -Si/-Qi output, converted to
// MiB. Unparseable entries are skipped.
func parseInfoSizes(out, field string) []float64 {
	var sizes []float64
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, field) {
			continue
		}
		_, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if v, ok := parseSizeMiB(strings.TrimSpace(rest)); ok {
			sizes = append(sizes, v)
		}
	}
	return sizes
}

// parseSizeMiB converts a pacman size string ("615.25 KiB", "1.2 GiB")
// to MiB.
func parseSizeMiB(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	switch fields[1] {
	case "B":
		return v / (1 << 20), true
	case "KiB":
		return v / 1024, true
	case "MiB":
		return v, true
	case "GiB":
		return v * 1024, true
	}
	return 0, false
}

func sumSizes(sizes []float64) float64 {
	var total float64
	for _, v := range sizes {
		total += v
	}
	return total
}

// pacmanLogTime is the timestamp layout inside pacman.log brackets:
// "[2024-01-15T20:04:05+0100]".
const pacmanLogTime = "2006-01-02T15:04:05-0700"

// parseLastUpdate finds the most recent completed full system upgrade in
// pacman.log contents and returns the seconds elapsed since it started.
// An upgrade counts only when a "transaction completed" line follows its
// "starting full system upgrade" line.
func parseLastUpdate(log string, now time.Time) *int64 {
	var pending, completed string
	for _, line := range strings.Split(log, "\n") {
		trimmed := strings.TrimSpace(line)
		ts := logTimestamp(trimmed)
		if strings.Contains(trimmed, "starting full system upgrade") {
			pending = ts
		}
		if pending != "" && strings.Contains(trimmed, "transaction completed") {
			completed = pending
			pending = ""
		}
	}
	if completed == "" {
		return nil
	}
	t, err := time.Parse(pacmanLogTime, completed)
	if err != nil {
		return nil
	}
	secs := int64(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	return &secs
}

// logTimestamp extracts the bracketed timestamp prefix of a pacman.log line.
func logTimestamp(line string) string {
	if !strings.HasPrefix(line, "[") {
		return ""
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return ""
	}
	return line[1:end]
}

// parseMirrorlist returns the first configured Server entry, trimmed at
// the /$repo template variable.
func parseMirrorlist(contents string) *string {
	for _, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		url, ok := strings.CutPrefix(trimmed, "Server = ")
		if !ok {
			continue
		}
		base, _, _ := strings.Cut(url, "/$repo")
		if base != "" {
			return &base
		}
	}
	return nil
}
