package scca

import (
	"time"

	"github.com/forensicarts/scca/layout"
)

// Prefetch is the decoded view of one prefetch file. All fields are
// derived during a single decode call; nothing references the source
// stream or buffer afterwards.
type Prefetch struct {
	// Version is the format version from the outer header.
	Version layout.Version

	// Header is the raw outer header.
	Header layout.Header

	// Info is the raw version-specific file-information block,
	// including region offsets not otherwise consumed.
	Info layout.FileInformation

	// ExecutableName is the executable short name from the outer
	// header, lossily decoded and truncated at the first NUL.
	ExecutableName string

	// RunCount is the number of recorded executions.
	RunCount uint32

	// LastRunTime is the most recent run timestamp, UTC.
	LastRunTime time.Time

	// PreviousRunTimes holds the earlier run timestamps in slot order,
	// zero-valued (unused) slots excluded. Always empty for version 17,
	// up to 2 entries for version 23 and up to 7 for versions 30/31.
	PreviousRunTimes []time.Time

	// Metrics holds the raw file-metrics entries in array order.
	Metrics []layout.MetricsEntry

	// FileNames holds the resolved filename for each metrics entry, in
	// the same order as Metrics. Duplicates are preserved.
	FileNames []string
}

// RunTimes returns the latest run timestamp followed by the previous
// run timestamps in slot order.
func (p *Prefetch) RunTimes() []time.Time {
	times := make([]time.Time, 0, 1+len(p.PreviousRunTimes))
	times = append(times, p.LastRunTime)
	times = append(times, p.PreviousRunTimes...)

	return times
}
