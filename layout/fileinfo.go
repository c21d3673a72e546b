package layout

import (
	"github.com/forensicarts/scca/endian"
	"github.com/forensicarts/scca/errs"
)

// InfoLayout describes the byte layout of one version of the
// file-information block. The first 36 bytes (the region offsets and
// counts) are identical in every version; the timestamp and run-count
// fields move around as slots and padding were added over time.
type InfoLayout struct {
	// Size is the total block size in bytes, including trailing
	// padding and unknown fields.
	Size int

	// LastRunOffset is the byte offset of the last run timestamp
	// within the block.
	LastRunOffset int

	// WideLastRun selects a 64-bit last run tick count. Version 17
	// stores 32 bits, interpreted identically after widening.
	WideLastRun bool

	// RemainsOffset is the byte offset of the previous-run slot array.
	// Meaningful only when RemainsSlots > 0.
	RemainsOffset int

	// RemainsSlots is the number of 64-bit previous-run slots.
	RemainsSlots int

	// RunCountOffset is the byte offset of the 32-bit run count.
	RunCountOffset int
}

// File-information layouts for the known versions. Versions 30 and 31
// share InfoLayout30.
var (
	InfoLayout17 = InfoLayout{Size: 52, LastRunOffset: 36, RunCountOffset: 44}
	InfoLayout23 = InfoLayout{Size: 160, LastRunOffset: 44, WideLastRun: true, RemainsOffset: 52, RemainsSlots: 2, RunCountOffset: 68}
	InfoLayout30 = InfoLayout{Size: 224, LastRunOffset: 44, WideLastRun: true, RemainsOffset: 52, RemainsSlots: 7, RunCountOffset: 124}
)

// FileInformation is the version-dependent block that follows the
// outer header at offset HeaderSize. All offsets are relative to the
// start of the decompressed buffer, not to the block itself.
type FileInformation struct {
	MetricsArrayOffset    uint32 // byte offset 0-3
	MetricsEntryCount     uint32 // byte offset 4-7
	TraceChainsOffset     uint32 // byte offset 8-11
	TraceChainsCount      uint32 // byte offset 12-15
	FilenameStringsOffset uint32 // byte offset 16-19
	FilenameStringsSize   uint32 // byte offset 20-23
	VolumesInfoOffset     uint32 // byte offset 24-27
	VolumesCount          uint32 // byte offset 28-31
	VolumesInfoSize       uint32 // byte offset 32-35

	// LastRunTime is the most recent run timestamp in Windows ticks,
	// widened to 64 bits for version 17.
	LastRunTime uint64

	// LastRunRemains holds the raw previous-run slot values in file
	// order, including zero sentinels for unused slots. Empty for
	// version 17.
	LastRunRemains []uint64

	RunCount uint32
}

// Parse parses a file-information block using the given layout. The
// slice must start at the block and hold at least layout.Size bytes.
func (fi *FileInformation) Parse(data []byte, l InfoLayout) error {
	if len(data) < l.Size {
		return errs.ErrTruncated
	}

	engine := endian.Engine()

	fi.MetricsArrayOffset = engine.Uint32(data[0:4])
	fi.MetricsEntryCount = engine.Uint32(data[4:8])
	fi.TraceChainsOffset = engine.Uint32(data[8:12])
	fi.TraceChainsCount = engine.Uint32(data[12:16])
	fi.FilenameStringsOffset = engine.Uint32(data[16:20])
	fi.FilenameStringsSize = engine.Uint32(data[20:24])
	fi.VolumesInfoOffset = engine.Uint32(data[24:28])
	fi.VolumesCount = engine.Uint32(data[28:32])
	fi.VolumesInfoSize = engine.Uint32(data[32:36])

	if l.WideLastRun {
		fi.LastRunTime = engine.Uint64(data[l.LastRunOffset : l.LastRunOffset+8])
	} else {
		fi.LastRunTime = uint64(engine.Uint32(data[l.LastRunOffset : l.LastRunOffset+4]))
	}

	fi.LastRunRemains = nil
	if l.RemainsSlots > 0 {
		fi.LastRunRemains = make([]uint64, l.RemainsSlots)
		for i := range fi.LastRunRemains {
			off := l.RemainsOffset + i*8
			fi.LastRunRemains[i] = engine.Uint64(data[off : off+8])
		}
	}

	fi.RunCount = engine.Uint32(data[l.RunCountOffset : l.RunCountOffset+4])

	return nil
}
