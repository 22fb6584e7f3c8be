package stats

import "fmt"

const bytesPerGiB = 1 << 30

// Snapshot is the immutable result of one stat-collection pass. Pointer
// fields are nil when the value could not be determined; the render layer
// substitutes a placeholder for those.
type Snapshot struct {
	PacmanVersion *string

	InstalledCount   *int
	UpgradableCount  *int
	SecondsSinceUp   *int64
	DownloadSizeMiB  *float64
	InstalledSizeMiB *float64
	NetUpgradeMiB    *float64
	OrphanCount      *int
	OrphanSizeMiB    *float64
	CacheSizeMiB     *float64
	DiskUsedBytes    *uint64
	DiskTotalBytes   *uint64
	MirrorURL        *string

	// DiskPath is the mount point the disk figures describe.
	DiskPath string
}

// FormatValue renders the value for one stat. The second return is false
// when no data is available.
func (s *Snapshot) FormatValue(id ID) (string, bool) {
	switch id {
	case Installed:
		if s.InstalledCount == nil {
			return "", false
		}
		return fmt.Sprintf("%d", *s.InstalledCount), true
	case Upgradable:
		if s.UpgradableCount == nil {
			return "", false
		}
		return fmt.Sprintf("%d", *s.UpgradableCount), true
	case LastUpdate:
		if s.SecondsSinceUp == nil {
			return "", false
		}
		return FormatDuration(*s.SecondsSinceUp), true
	case DownloadSize:
		return formatMiB(s.DownloadSizeMiB)
	case InstalledSize:
		return formatMiB(s.InstalledSizeMiB)
	case NetUpgradeSize:
		return formatMiB(s.NetUpgradeMiB)
	case OrphanedPackages:
		if s.OrphanCount == nil {
			return "", false
		}
		if *s.OrphanCount > 0 && s.OrphanSizeMiB != nil {
			return fmt.Sprintf("%d (%.2f MiB)", *s.OrphanCount, *s.OrphanSizeMiB), true
		}
		return fmt.Sprintf("%d", *s.OrphanCount), true
	case CacheSize:
		return formatMiB(s.CacheSizeMiB)
	case Disk:
		if s.DiskUsedBytes == nil || s.DiskTotalBytes == nil {
			return "", false
		}
		used := float64(*s.DiskUsedBytes) / bytesPerGiB
		total := float64(*s.DiskTotalBytes) / bytesPerGiB
		pct := 0.0
		if *s.DiskTotalBytes > 0 {
			pct = float64(*s.DiskUsedBytes) / float64(*s.DiskTotalBytes) * 100
		}
		return fmt.Sprintf("%.2f GiB / %.2f GiB (%.0f%%)", used, total, pct), true
	case MirrorURL:
		if s.MirrorURL == nil {
			return "", false
		}
		return *s.MirrorURL, true
	}
	return "", false
}

func formatMiB(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return fmt.Sprintf("%.2f MiB", *v), true
}

// FormatDuration renders a second count as a coarse human duration:
// seconds below a minute, then whole minutes, whole hours, and finally
// "N days M hours".
func FormatDuration(seconds int64) string {
	plural := func(n int64) string {
		if n != 1 {
			return "s"
		}
		return ""
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	case seconds < 3600:
		m := seconds / 60
		return fmt.Sprintf("%d minute%s", m, plural(m))
	case seconds < 86400:
		h := seconds / 3600
		return fmt.Sprintf("%d hour%s", h, plural(h))
	default:
		d := seconds / 86400
		h := (seconds % 86400) / 3600
		return fmt.Sprintf("%d day%s %d hour%s", d, plural(d), h, plural(h))
	}
}
