// Package testutil builds synthetic prefetch buffers for tests.
//
// Production code never encodes prefetch files; this builder exists so
// decoder tests can round-trip known values through real byte layouts
// without shipping fixture binaries.
package testutil

import (
	"unicode/utf16"

	"github.com/forensicarts/scca/endian"
	"github.com/forensicarts/scca/layout"
)

// File describes a synthetic prefetch file.
type File struct {
	Version        layout.Version
	ExecutableName string
	RunCount       uint32
	LastRunTicks   uint64

	// RemainTicks seeds the previous-run slot array. Shorter slices are
	// zero-padded to the version's slot count; ignored for version 17.
	RemainTicks []uint64

	// Names are the referenced filenames, one metrics entry each.
	Names []string

	// Signature overrides the outer header signature when non-zero.
	Signature [4]byte
}

// Build encodes the file into a raw (uncompressed) prefetch buffer.
// Panics on unknown versions; tests for unsupported-version handling
// patch the version field of a valid buffer instead.
func (f File) Build() []byte {
	lay, ok := layout.Lookup(f.Version)
	if !ok {
		panic("testutil: unknown prefetch version " + f.Version.String())
	}

	engine := endian.Engine()

	metricsOffset := layout.HeaderSize + lay.Info.Size
	stringsOffset := metricsOffset + len(f.Names)*lay.Metrics.Size

	// Filename-strings region: each name NUL terminated, offsets and
	// character counts relative to the region start.
	var strRegion []byte
	nameOffsets := make([]uint32, len(f.Names))
	nameChars := make([]uint32, len(f.Names))
	for i, name := range f.Names {
		nameOffsets[i] = uint32(len(strRegion))
		encoded := EncodeUTF16(name)
		nameChars[i] = uint32(len(encoded) / 2)
		strRegion = append(strRegion, encoded...)
		strRegion = append(strRegion, 0, 0)
	}

	totalSize := stringsOffset + len(strRegion)

	buf := make([]byte, 0, totalSize)

	// Outer header.
	buf = engine.AppendUint32(buf, uint32(f.Version))
	sig := f.Signature
	if sig == ([4]byte{}) {
		sig = layout.Signature
	}
	buf = append(buf, sig[:]...)
	buf = engine.AppendUint32(buf, 0x11) // unknown
	buf = engine.AppendUint32(buf, uint32(totalSize))
	name := make([]byte, layout.NameSize)
	copy(name, EncodeUTF16(f.ExecutableName))
	buf = append(buf, name...)
	buf = engine.AppendUint32(buf, 0x7F21C5A1) // path hash
	buf = engine.AppendUint32(buf, 0)          // flag

	// File-information block at the fixed offset.
	info := make([]byte, lay.Info.Size)
	engine.PutUint32(info[0:4], uint32(metricsOffset))
	engine.PutUint32(info[4:8], uint32(len(f.Names)))
	engine.PutUint32(info[16:20], uint32(stringsOffset))
	engine.PutUint32(info[20:24], uint32(len(strRegion)))
	if lay.Info.WideLastRun {
		engine.PutUint64(info[lay.Info.LastRunOffset:], f.LastRunTicks)
	} else {
		engine.PutUint32(info[lay.Info.LastRunOffset:], uint32(f.LastRunTicks))
	}
	for i := 0; i < lay.Info.RemainsSlots; i++ {
		var ticks uint64
		if i < len(f.RemainTicks) {
			ticks = f.RemainTicks[i]
		}
		engine.PutUint64(info[lay.Info.RemainsOffset+i*8:], ticks)
	}
	engine.PutUint32(info[lay.Info.RunCountOffset:], f.RunCount)
	buf = append(buf, info...)

	// Metrics array.
	for i := range f.Names {
		buf = engine.AppendUint32(buf, uint32(i))     // start time
		buf = engine.AppendUint32(buf, 100+uint32(i)) // duration
		if lay.Metrics.HasNTFSReference {
			buf = engine.AppendUint32(buf, 90+uint32(i)) // average duration
		}
		buf = engine.AppendUint32(buf, nameOffsets[i])
		buf = engine.AppendUint32(buf, nameChars[i])
		buf = engine.AppendUint32(buf, 0x200) // flags
		if lay.Metrics.HasNTFSReference {
			buf = engine.AppendUint64(buf, 0x4000000000123+uint64(i))
		}
	}

	return append(buf, strRegion...)
}

// Envelope wraps payload in a compressed-envelope framing: the
// "MAM\x04" signature, a size hint and the opaque payload bytes. The
// payload is whatever the test's fake Decompressor expects.
func Envelope(payload []byte, decompressedSize uint32) []byte {
	engine := endian.Engine()

	buf := append([]byte{}, layout.CompressedSignature[:]...)
	buf = engine.AppendUint32(buf, decompressedSize)

	return append(buf, payload...)
}

// EncodeUTF16 encodes s as little-endian UTF-16 without a terminator.
func EncodeUTF16(s string) []byte {
	engine := endian.Engine()

	var buf []byte
	for _, unit := range utf16.Encode([]rune(s)) {
		buf = engine.AppendUint16(buf, unit)
	}

	return buf
}
