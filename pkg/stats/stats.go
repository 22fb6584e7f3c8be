// Package stats defines the closed set of pacfetch stat identifiers, the
// parsing of declared stat/title references, and the immutable snapshot of
// collected values the render engine consumes.
package stats

import "fmt"

// ID identifies one collectable statistic.
type ID int

const (
	Installed ID = iota
	Upgradable
	LastUpdate
	DownloadSize
	InstalledSize
	NetUpgradeSize
	OrphanedPackages
	CacheSize
	Disk
	MirrorURL
)

// All returns every stat identifier in display order.
func All() []ID {
	return []ID{
		Installed, Upgradable, LastUpdate, DownloadSize, InstalledSize,
		NetUpgradeSize, OrphanedPackages, CacheSize, Disk, MirrorURL,
	}
}

// Key returns the config-file key for the stat.
func (id ID) Key() string {
	switch id {
	case Installed:
		return "installed"
	case Upgradable:
		return "upgradable"
	case LastUpdate:
		return "last_update"
	case DownloadSize:
		return "download_size"
	case InstalledSize:
		return "installed_size"
	case NetUpgradeSize:
		return "net_upgrade_size"
	case OrphanedPackages:
		return "orphaned_packages"
	case CacheSize:
		return "cache_size"
	case Disk:
		return "disk"
	case MirrorURL:
		return "mirror_url"
	}
	return ""
}

// Label returns the display label for the stat. The disk label is completed
// with the monitored path at render-item build time.
func (id ID) Label() string {
	switch id {
	case Installed:
		return "Installed"
	case Upgradable:
		return "Upgradable"
	case LastUpdate:
		return "Last System Update"
	case DownloadSize:
		return "Download Size"
	case InstalledSize:
		return "Installed Size"
	case NetUpgradeSize:
		return "Net Upgrade Size"
	case OrphanedPackages:
		return "Orphaned Packages"
	case CacheSize:
		return "Package Cache"
	case Disk:
		return "Disk"
	case MirrorURL:
		return "Mirror URL"
	}
	return ""
}

// RefKind distinguishes the three shapes a declared stats-list entry can take.
type RefKind int

const (
	// RefStat is a plain stat key such as "installed".
	RefStat RefKind = iota
	// RefNamedTitle is a "title.<name>" reference to a named title spec.
	RefNamedTitle
	// RefLegacyTitle is the bare "title" token, kept for old configs.
	RefLegacyTitle
)

// Ref is one parsed entry of the declared stats list.
type Ref struct {
	Kind RefKind
	Stat ID     // valid when Kind == RefStat
	Name string // valid when Kind == RefNamedTitle
}

var byKey = func() map[string]ID {
	m := make(map[string]ID, len(All()))
	for _, id := range All() {
		m[id.Key()] = id
	}
	return m
}()

// ParseRef parses a declared stats-list entry.
func ParseRef(s string) (Ref, error) {
	if s == "title" {
		return Ref{Kind: RefLegacyTitle}, nil
	}
	if len(s) > len("title.") && s[:len("title.")] == "title." {
		return Ref{Kind: RefNamedTitle, Name: s[len("title."):]}, nil
	}
	if s == "title." {
		return Ref{}, fmt.Errorf("stats: title name cannot be empty")
	}
	if id, ok := byKey[s]; ok {
		return Ref{Kind: RefStat, Stat: id}, nil
	}
	return Ref{}, fmt.Errorf("stats: unknown stat %q", s)
}
