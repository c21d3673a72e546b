package layout

import (
	"github.com/forensicarts/scca/endian"
	"github.com/forensicarts/scca/errs"
)

// MetricsLayout describes the byte layout of one file-metrics array
// entry. Version 17 uses a 20-byte entry; versions 23, 30 and 31 share
// a 32-byte entry that adds an average duration and an NTFS file
// reference.
type MetricsLayout struct {
	// Size is the entry size in bytes.
	Size int

	// HasNTFSReference selects the wide entry shape with the average
	// duration and NTFS file reference fields.
	HasNTFSReference bool
}

// Metrics entry layouts. Versions 30 and 31 use MetricsLayout23.
var (
	MetricsLayout17 = MetricsLayout{Size: 20}
	MetricsLayout23 = MetricsLayout{Size: 32, HasNTFSReference: true}
)

// MetricsEntry is one record of the file-metrics array: one per file
// referenced during the traced execution. The filename fields address
// into the filename-strings region, relative to its start.
type MetricsEntry struct {
	StartTime       uint32 // trace start, ms relative
	Duration        uint32
	AverageDuration uint32 // wide entries only

	// FilenameStringOffset is the byte offset of the filename within
	// the filename-strings region.
	FilenameStringOffset uint32

	// FilenameStringChars is the filename length in UTF-16 code units
	// (2 bytes each), excluding the terminator.
	FilenameStringChars uint32

	Flags         uint32
	NTFSReference uint64 // wide entries only
}

// Parse parses a metrics array entry using the given layout. The slice
// must start at the entry and hold at least layout.Size bytes.
func (m *MetricsEntry) Parse(data []byte, l MetricsLayout) error {
	if len(data) < l.Size {
		return errs.ErrTruncated
	}

	engine := endian.Engine()

	m.StartTime = engine.Uint32(data[0:4])
	m.Duration = engine.Uint32(data[4:8])

	if l.HasNTFSReference {
		m.AverageDuration = engine.Uint32(data[8:12])
		m.FilenameStringOffset = engine.Uint32(data[12:16])
		m.FilenameStringChars = engine.Uint32(data[16:20])
		m.Flags = engine.Uint32(data[20:24])
		m.NTFSReference = engine.Uint64(data[24:32])
	} else {
		m.AverageDuration = 0
		m.FilenameStringOffset = engine.Uint32(data[8:12])
		m.FilenameStringChars = engine.Uint32(data[12:16])
		m.Flags = engine.Uint32(data[16:20])
		m.NTFSReference = 0
	}

	return nil
}
