package stats

import "testing"

func intp(v int) *int          { return &v }
func i64p(v int64) *int64      { return &v }
func f64p(v float64) *float64  { return &v }
func u64p(v uint64) *uint64    { return &v }
func strp(v string) *string    { return &v }

func TestParseRefStat(t *testing.T) {
	r, err := ParseRef("installed")
	if err != nil {
		t.Fatalf("ParseRef(installed) error = %v", err)
	}
	if r.Kind != RefStat || r.Stat != Installed {
		t.Errorf("ParseRef(installed) = %+v", r)
	}
}

func TestParseRefAllKeys(t *testing.T) {
	for _, id := range All() {
		r, err := ParseRef(id.Key())
		if err != nil {
			t.Errorf("ParseRef(%s) error = %v", id.Key(), err)
			continue
		}
		if r.Kind != RefStat || r.Stat != id {
			t.Errorf("ParseRef(%s) = %+v", id.Key(), r)
		}
	}
}

func TestParseRefNamedTitle(t *testing.T) {
	r, err := ParseRef("title.header")
	if err != nil {
		t.Fatalf("ParseRef(title.header) error = %v", err)
	}
	if r.Kind != RefNamedTitle || r.Name != "header" {
		t.Errorf("ParseRef(title.header) = %+v", r)
	}
}

func TestParseRefLegacyTitle(t *testing.T) {
	r, err := ParseRef("title")
	if err != nil {
		t.Fatalf("ParseRef(title) error = %v", err)
	}
	if r.Kind != RefLegacyTitle {
		t.Errorf("ParseRef(title) = %+v", r)
	}
}

func TestParseRefEmptyTitleName(t *testing.T) {
	if _, err := ParseRef("title."); err == nil {
		t.Error("ParseRef(title.) error = nil, want non-nil")
	}
}

func TestParseRefUnknown(t *testing.T) {
	if _, err := ParseRef("bogus"); err == nil {
		t.Error("ParseRef(bogus) error = nil, want non-nil")
	}
}

func TestFormatValueInstalled(t *testing.T) {
	s := &Snapshot{InstalledCount: intp(1268)}
	v, ok := s.FormatValue(Installed)
	if !ok || v != "1268" {
		t.Errorf("FormatValue(Installed) = %q, %v", v, ok)
	}
}

func TestFormatValueAbsent(t *testing.T) {
	s := &Snapshot{}
	for _, id := range All() {
		if v, ok := s.FormatValue(id); ok {
			t.Errorf("empty snapshot FormatValue(%s) = %q, want absent", id.Key(), v)
		}
	}
}

func TestFormatValueSizes(t *testing.T) {
	s := &Snapshot{DownloadSizeMiB: f64p(12.345)}
	v, ok := s.FormatValue(DownloadSize)
	if !ok || v != "12.35 MiB" {
		t.Errorf("FormatValue(DownloadSize) = %q, %v", v, ok)
	}
}

func TestFormatValueDisk(t *testing.T) {
	s := &Snapshot{
		DiskUsedBytes:  u64p(50 << 30),
		DiskTotalBytes: u64p(100 << 30),
	}
	v, ok := s.FormatValue(Disk)
	if !ok || v != "50.00 GiB / 100.00 GiB (50%)" {
		t.Errorf("FormatValue(Disk) = %q, %v", v, ok)
	}
}

func TestFormatValueOrphansWithSize(t *testing.T) {
	s := &Snapshot{OrphanCount: intp(3), OrphanSizeMiB: f64p(42.5)}
	v, ok := s.FormatValue(OrphanedPackages)
	if !ok || v != "3 (42.50 MiB)" {
		t.Errorf("FormatValue(OrphanedPackages) = %q, %v", v, ok)
	}
}

func TestFormatValueOrphansZero(t *testing.T) {
	s := &Snapshot{OrphanCount: intp(0), OrphanSizeMiB: f64p(1)}
	v, ok := s.FormatValue(OrphanedPackages)
	if !ok || v != "0" {
		t.Errorf("FormatValue(OrphanedPackages zero) = %q, %v", v, ok)
	}
}

func TestFormatValueMirror(t *testing.T) {
	s := &Snapshot{MirrorURL: strp("https://mirror.example.org/archlinux")}
	v, ok := s.FormatValue(MirrorURL)
	if !ok || v != "https://mirror.example.org/archlinux" {
		t.Errorf("FormatValue(MirrorURL) = %q, %v", v, ok)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		sec  int64
		want string
	}{
		{1, "1 second"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{150, "2 minutes"},
		{3600, "1 hour"},
		{7300, "2 hours"},
		{86400, "1 day 0 hours"},
		{90000, "1 day 1 hour"},
		{266400, "3 days 2 hours"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.sec); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}

func TestLastUpdateUsesDuration(t *testing.T) {
	s := &Snapshot{SecondsSinceUp: i64p(90000)}
	v, ok := s.FormatValue(LastUpdate)
	if !ok || v != "1 day 1 hour" {
		t.Errorf("FormatValue(LastUpdate) = %q, %v", v, ok)
	}
}
