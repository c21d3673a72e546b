// Package envelope detects and unwraps the compressed envelope some
// prefetch files are stored in.
//
// Windows 10 and later compress prefetch files with LZXPRESS Huffman
// behind an 8-byte detect header signed "MAM\x04". Decompression is an
// external collaborator: this package defines the Decompressor
// interface and routes the payload through it, but ships no
// implementation of the algorithm itself.
package envelope

import (
	"fmt"
	"io"

	"github.com/forensicarts/scca/errs"
	"github.com/forensicarts/scca/layout"
)

// Decompressor unwraps an LZXPRESS-Huffman compressed payload.
//
// Implementations receive the full compressed payload (everything
// after the 8-byte detect header) and return the decompressed buffer.
// A failed decompression must return a non-nil error; an empty result
// with a nil error is a successful decompression of empty content.
//
// Implementations must be safe for concurrent use: a batch decoding
// many files in parallel shares one Decompressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// DecompressorFunc adapts a plain function to the Decompressor
// interface.
type DecompressorFunc func(data []byte) ([]byte, error)

func (f DecompressorFunc) Decompress(data []byte) ([]byte, error) {
	return f(data)
}

// Materialize reads r to the end and returns the raw prefetch content
// as an in-memory buffer, unwrapping the compressed envelope when
// present.
//
// The first four bytes decide the route: the "MAM\x04" signature sends
// everything past the detect header through dec; anything else is
// returned as read. There is no fixed-size assumption in either case.
//
// A compressed envelope with a nil dec fails with ErrNoDecompressor.
// A failed decompression fails with ErrDecompressionFailed; it never
// falls back to raw parsing.
func Materialize(r io.Reader, dec Decompressor) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefetch content: %w", err)
	}

	return Unwrap(data, dec)
}

// Unwrap is Materialize over an already-loaded byte slice. Raw content
// is returned as-is, without copying.
func Unwrap(data []byte, dec Decompressor) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}

	var detect layout.DetectHeader
	if err := detect.Parse(data); err != nil {
		return nil, fmt.Errorf("compressed envelope shorter than detect header: %w", err)
	}

	if dec == nil {
		return nil, errs.ErrNoDecompressor
	}

	decompressed, err := dec.Decompress(data[layout.DetectHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecompressionFailed, err)
	}

	return decompressed, nil
}

// IsCompressed reports whether data starts with the compressed
// envelope signature.
func IsCompressed(data []byte) bool {
	if len(data) < len(layout.CompressedSignature) {
		return false
	}

	return [4]byte(data[0:4]) == layout.CompressedSignature
}
