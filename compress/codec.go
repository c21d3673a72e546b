// Package compress provides the streaming compression codecs used for
// record sinks.
//
// Batch runs over large prefetch directories produce sizeable record
// streams; the CLI can route them through Zstd, S2 or LZ4 on the way
// to disk. This package has nothing to do with the LZXPRESS-Huffman
// envelope of the prefetch files themselves — that collaborator lives
// behind envelope.Decompressor.
package compress

import (
	"fmt"
	"io"

	"github.com/forensicarts/scca/errs"
)

// Type selects the record sink compression.
type Type uint8

const (
	TypeNone Type = 1 // TypeNone writes records uncompressed.
	TypeZstd Type = 2 // TypeZstd selects Zstandard.
	TypeS2   Type = 3 // TypeS2 selects S2 (Snappy-compatible).
	TypeLZ4  Type = 4 // TypeLZ4 selects LZ4 frame format.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseType parses a codec name as given on the command line.
func ParseType(s string) (Type, error) {
	switch s {
	case "none":
		return TypeNone, nil
	case "zstd":
		return TypeZstd, nil
	case "s2":
		return TypeS2, nil
	case "lz4":
		return TypeLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCodec, s)
	}
}

// NewWriter wraps w with the selected compression. The returned writer
// must be closed to flush the final frame; closing it does not close w.
func NewWriter(t Type, w io.Writer) (io.WriteCloser, error) {
	switch t {
	case TypeNone:
		return nopWriteCloser{w}, nil
	case TypeZstd:
		return newZstdWriter(w)
	case TypeS2:
		return newS2Writer(w), nil
	case TypeLZ4:
		return newLZ4Writer(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCodec, t)
	}
}
