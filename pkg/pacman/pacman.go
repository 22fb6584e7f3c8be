// Package pacman collects the pacfetch stats snapshot from the local
// pacman installation: binary output parsing, the pacman log, the package
// cache directory, the mirrorlist, and filesystem usage. Everything is
// local; nothing here touches the network. Every sub-collector degrades to
// an absent value when its source is unavailable.
package pacman

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/camtisocial/pacfetch/pkg/stats"
)

const (
	pacmanLogPath  = "/var/log/pacman.log"
	cacheDirPath   = "/var/cache/pacman/pkg"
	mirrorlistPath = "/etc/pacman.d/mirrorlist"
)

// Manager collects a stats snapshot from the local pacman installation.
type Manager struct {
	// DiskPath is the mount point the disk stat reports on.
	DiskPath string
	// Log receives debug lines for collection failures.
	Log *slog.Logger
}

// NewManager returns a Manager reporting disk usage for diskPath.
func NewManager(diskPath string, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{DiskPath: diskPath, Log: log}
}

// Collect gathers every stat the declared references may need. Individual
// failures leave the corresponding snapshot field nil.
func (m *Manager) Collect(refs []stats.Ref) *stats.Snapshot {
	snap := &stats.Snapshot{DiskPath: m.DiskPath}

	snap.PacmanVersion = m.version()
	want := neededStats(refs)

	if want[stats.Installed] {
		snap.InstalledCount = m.installedCount()
	}
	if want[stats.Upgradable] || want[stats.DownloadSize] || want[stats.InstalledSize] || want[stats.NetUpgradeSize] {
		m.collectUpgrades(snap)
	}
	if want[stats.LastUpdate] {
		snap.SecondsSinceUp = m.secondsSinceUpdate()
	}
	if want[stats.OrphanedPackages] {
		m.collectOrphans(snap)
	}
	if want[stats.CacheSize] {
		snap.CacheSizeMiB = m.cacheSize()
	}
	if want[stats.Disk] {
		m.collectDisk(snap)
	}
	if want[stats.MirrorURL] {
		snap.MirrorURL = m.mirrorURL()
	}
	return snap
}

// neededStats reports which stats the declared references actually use, so
// a trimmed-down config skips the expensive collectors.
func neededStats(refs []stats.Ref) map[stats.ID]bool {
	want := make(map[stats.ID]bool)
	for _, r := range refs {
		if r.Kind == stats.RefStat {
			want[r.Stat] = true
		}
	}
	return want
}

func (m *Manager) version() *string {
	out, err := exec.Command("pacman", "--version").Output()
	if err != nil {
		m.Log.Debug("pacman --version failed", "error", err)
		return nil
	}
	return parseVersion(string(out))
}

func (m *Manager) installedCount() *int {
	out, err := exec.Command("pacman", "-Qq").Output()
	if err != nil {
		m.Log.Debug("pacman -Qq failed", "error", err)
		return nil
	}
	n := countLines(string(out))
	return &n
}

// collectUpgrades fills the upgradable count and the three size stats from
// the local sync database. Download and new installed sizes come from
// pacman -Si on the upgradable packages; the currently installed sizes
// come from pacman -Qi, giving the net change.
func (m *Manager) collectUpgrades(snap *stats.Snapshot) {
	out, err := exec.Command("pacman", "-Qu").Output()
	if err != nil {
		// pacman -Qu exits non-zero when nothing is upgradable.
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 && len(out) == 0 {
			zero := 0
			zf := 0.0
			snap.UpgradableCount = &zero
			snap.DownloadSizeMiB = &zf
			snap.InstalledSizeMiB = &zf
			snap.NetUpgradeMiB = &zf
			return
		}
		m.Log.Debug("pacman -Qu failed", "error", err)
		return
	}

	names := parseUpgradableNames(string(out))
	n := len(names)
	snap.UpgradableCount = &n
	if n == 0 {
		zf := 0.0
		snap.DownloadSizeMiB = &zf
		snap.InstalledSizeMiB = &zf
		snap.NetUpgradeMiB = &zf
		return
	}

	siOut, err := exec.Command("pacman", append([]string{"-Si"}, names...)...).Output()
	if err != nil {
		m.Log.Debug("pacman -Si failed", "error", err)
		return
	}
	download := sumSizes(parseInfoSizes(string(siOut), "Download Size"))
	installed := sumSizes(parseInfoSizes(string(siOut), "Installed Size"))
	snap.DownloadSizeMiB = &download
	snap.InstalledSizeMiB = &installed

	qiOut, err := exec.Command("pacman", append([]string{"-Qi"}, names...)...).Output()
	if err != nil {
		m.Log.Debug("pacman -Qi failed", "error", err)
		return
	}
	current := sumSizes(parseInfoSizes(string(qiOut), "Installed Size"))
	net := installed - current
	snap.NetUpgradeMiB = &net
}

func (m *Manager) collectOrphans(snap *stats.Snapshot) {
	out, err := exec.Command("pacman", "-Qtdq").Output()
	if err != nil {
		// Exit code 1 with no output means no orphans.
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 && len(out) == 0 {
			zero := 0
			snap.OrphanCount = &zero
			return
		}
		m.Log.Debug("pacman -Qtdq failed", "error", err)
		return
	}

	names := nonEmptyLines(string(out))
	n := len(names)
	snap.OrphanCount = &n
	if n == 0 {
		return
	}

	qiOut, err := exec.Command("pacman", append([]string{"-Qi"}, names...)...).Output()
	if err != nil {
		m.Log.Debug("pacman -Qi for orphans failed", "error", err)
		return
	}
	size := sumSizes(parseInfoSizes(string(qiOut), "Installed Size"))
	snap.OrphanSizeMiB = &size
}

func (m *Manager) secondsSinceUpdate() *int64 {
	data, err := os.ReadFile(pacmanLogPath)
	if err != nil {
		m.Log.Debug("reading pacman log failed", "error", err)
		return nil
	}
	return parseLastUpdate(string(data), time.Now())
}

// cacheSize sums the package files sitting in the pacman cache directory.
func (m *Manager) cacheSize() *float64 {
	entries, err := os.ReadDir(cacheDirPath)
	if err != nil {
		m.Log.Debug("reading package cache failed", "error", err)
		return nil
	}
	var total int64
	for _, e := range entries {
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += info.Size()
	}
	mib := float64(total) / (1 << 20)
	return &mib
}

func (m *Manager) collectDisk(snap *stats.Snapshot) {
	path := expandTilde(m.DiskPath)
	usage, err := disk.Usage(path)
	if err != nil {
		m.Log.Debug("disk usage failed", "path", path, "error", err)
		return
	}
	snap.DiskUsedBytes = &usage.Used
	snap.DiskTotalBytes = &usage.Total
}

func (m *Manager) mirrorURL() *string {
	data, err := os.ReadFile(mirrorlistPath)
	if err != nil {
		m.Log.Debug("reading mirrorlist failed", "error", err)
		return nil
	}
	return parseMirrorlist(string(data))
}

func expandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
