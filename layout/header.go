package layout

import (
	"github.com/forensicarts/scca/endian"
	"github.com/forensicarts/scca/errs"
)

// DetectHeader is the 8-byte header used to recognize the compressed
// envelope before any structured decoding happens.
type DetectHeader struct {
	Signature [4]byte // byte offset 0-3
	Size      uint32  // byte offset 4-7, decompressed size hint
}

// Parse parses the detect header from a byte slice.
func (h *DetectHeader) Parse(data []byte) error {
	if len(data) < DetectHeaderSize {
		return errs.ErrTruncated
	}

	copy(h.Signature[:], data[0:4])
	h.Size = endian.Engine().Uint32(data[4:8])

	return nil
}

// IsCompressed reports whether the signature marks an LZXPRESS-Huffman
// compressed envelope.
func (h *DetectHeader) IsCompressed() bool {
	return h.Signature == CompressedSignature
}

// Header is the outer prefetch header. Its layout is identical across
// all known format versions, so it is parsed before version dispatch.
//
// The Signature field is decoded but never validated against the
// expected "SCCA" constant: real-world files with variant signatures
// decode fine, and the version dispatch already rejects anything that
// is not structurally a prefetch file. This matches the permissive
// behavior observed in forensic tooling.
type Header struct {
	Version   uint32         // byte offset 0-3
	Signature [4]byte        // byte offset 4-7, "SCCA" on well-formed files
	Size      uint32         // byte offset 12-15, total file size
	Name      [NameSize]byte // byte offset 16-75, UTF-16 executable name, NUL padded
	Hash      uint32         // byte offset 76-79, prefetch path hash
	Flag      uint32         // byte offset 80-83
}

// Parse parses the outer header from a byte slice. The slice must hold
// at least HeaderSize bytes; bytes 8-11 are unknown and skipped.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrTruncated
	}

	engine := endian.Engine()

	h.Version = engine.Uint32(data[0:4])
	copy(h.Signature[:], data[4:8])
	h.Size = engine.Uint32(data[12:16])
	copy(h.Name[:], data[16:16+NameSize])
	h.Hash = engine.Uint32(data[76:80])
	h.Flag = engine.Uint32(data[80:84])

	return nil
}

// ExecutableName returns the executable short name from the header.
//
// The name buffer is decoded leniently: invalid UTF-16 sequences are
// replaced rather than rejected, and the result is truncated at the
// first NUL. Trailing garbage past the terminator is common in
// real-world files, so this field is best-effort by design.
func (h *Header) ExecutableName() string {
	return DecodeUTF16Lossy(h.Name[:])
}
