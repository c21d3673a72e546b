// Package layout is the declarative catalog of Windows Prefetch (SCCA)
// binary record shapes.
//
// A prefetch file starts with a fixed 84-byte outer header (Header),
// optionally preceded by an 8-byte compressed-envelope detect header
// (DetectHeader). The outer header's version field selects the shapes
// of the two variable structures that follow:
//
//   - FileInformation: the fixed-size per-version block at offset 84
//     holding region offsets, run timestamps and the run count.
//   - MetricsEntry: one fixed-size record per referenced file, read
//     from the metrics array region.
//
// Four versions are known: 17 (XP/2003), 23 (Vista/7), 30 (8.1/10) and
// 31 (11). Lookup resolves a version to its Layout; unknown versions
// are rejected before any version-specific parsing happens.
//
// All integers are little-endian. Offsets held in FileInformation are
// relative to the start of the decompressed buffer; filename offsets
// held in MetricsEntry are relative to the filename-strings region.
//
// This package contains no decoding policy beyond individual record
// parsing; the structured decoder lives in the root scca package.
package layout
