// Package wintime converts Windows FILETIME tick counts to time.Time.
//
// Prefetch run timestamps are stored as 100-nanosecond intervals since
// 1601-01-01 00:00:00 UTC (the Windows epoch). Conversion splits the
// tick count into whole seconds and a sub-second remainder so no
// precision is lost for any representable instant.
package wintime

import "time"

const (
	// ticksPerSecond is the number of 100ns intervals in one second.
	ticksPerSecond = 10_000_000

	// epochDelta is the number of seconds between the Windows epoch
	// (1601-01-01) and the Unix epoch (1970-01-01).
	epochDelta = 11_644_473_600
)

// FromTicks converts a Windows FILETIME tick count to a UTC time.Time.
//
// A zero tick count converts to 1601-01-01T00:00:00Z; callers treating
// zero as a "slot unused" sentinel must filter it before conversion.
func FromTicks(ticks uint64) time.Time {
	secs := int64(ticks/ticksPerSecond) - epochDelta
	nanos := int64(ticks%ticksPerSecond) * 100

	return time.Unix(secs, nanos).UTC()
}

// ToTicks converts a time.Time to a Windows FILETIME tick count.
// Instants before the Windows epoch return 0. Used by tests to build
// synthetic buffers from known instants.
func ToTicks(t time.Time) uint64 {
	secs := t.Unix() + epochDelta
	if secs < 0 {
		return 0
	}

	return uint64(secs)*ticksPerSecond + uint64(t.Nanosecond()/100)
}
