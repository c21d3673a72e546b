package layout

import "fmt"

// Version is the prefetch format version from the outer header.
//
// Four versions are known. They share the outer header layout and
// differ in the shape of the file-information block and the
// file-metrics array entries.
type Version uint32

const (
	Version17 Version = 17 // Windows XP / 2003
	Version23 Version = 23 // Windows Vista / 7
	Version30 Version = 30 // Windows 8.1 / 10
	Version31 Version = 31 // Windows 11
)

func (v Version) String() string {
	return fmt.Sprintf("%d", uint32(v))
}

// Layout pairs the version-specific record shapes selected once after
// reading the version field.
type Layout struct {
	Info    InfoLayout
	Metrics MetricsLayout
}

// catalog is the version dispatch table. Versions 30 and 31 share the
// version 30 file-information shape and the version 23 metrics entry
// shape; only version 17 uses the narrow metrics entry without the
// NTFS file reference.
var catalog = map[Version]Layout{
	Version17: {Info: InfoLayout17, Metrics: MetricsLayout17},
	Version23: {Info: InfoLayout23, Metrics: MetricsLayout23},
	Version30: {Info: InfoLayout30, Metrics: MetricsLayout23},
	Version31: {Info: InfoLayout30, Metrics: MetricsLayout23},
}

// Lookup returns the record layouts for a format version. The second
// return value is false for unknown versions.
func Lookup(v Version) (Layout, bool) {
	l, ok := catalog[v]
	return l, ok
}

// Supported reports whether v is a known prefetch format version.
func (v Version) Supported() bool {
	_, ok := catalog[v]
	return ok
}
