// Package scca decodes Windows Prefetch (SCCA) files: per-executable
// binary traces recording run counts, run timestamps and the files
// touched during process startup.
//
// # Format
//
// A prefetch file is an offset-addressed binary structure: a fixed
// outer header, a version-specific file-information block, a
// file-metrics array and a UTF-16 filename-strings region, all
// little-endian. Four header versions exist in the wild — 17 (XP),
// 23 (Vista/7), 30 (8.1/10) and 31 (11) — and Windows 10 onwards wraps
// the whole structure in an LZXPRESS-Huffman compressed envelope
// signed "MAM\x04".
//
// # Basic Usage
//
// Decoding a raw prefetch file:
//
//	f, _ := os.Open("CMD.EXE-4A81B364.pf")
//	defer f.Close()
//
//	pf, err := scca.Decode(f)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pf.ExecutableName, pf.RunCount, pf.LastRunTime)
//	for _, name := range pf.FileNames {
//	    fmt.Println(name)
//	}
//
// Compressed envelopes need an LZXPRESS-Huffman decompressor, injected
// as a collaborator:
//
//	pf, err := scca.Decode(f, scca.WithDecompressor(dec))
//
// # Package Structure
//
// This package holds the structured decoder and convenience wrappers.
// The record shapes live in the layout package, envelope handling in
// the envelope package, result projection in the record package, and
// directory-level batch decoding in the batch package.
//
// # Errors
//
// All failures are per-file and classified by sentinels in the errs
// package; batch callers should log and continue rather than abort.
// Decoding either yields a complete Prefetch or nothing — there is no
// partial-record emission.
package scca

import (
	"io"
	"os"
)

// Decode reads one prefetch file from r and decodes it.
func Decode(r io.Reader, opts ...Option) (*Prefetch, error) {
	d, err := NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode(r)
}

// DecodeBuffer decodes raw, already-decompressed prefetch content.
func DecodeBuffer(data []byte) (*Prefetch, error) {
	d := &Decoder{}

	return d.DecodeBuffer(data)
}

// DecodeFile opens and decodes the prefetch file at path.
func DecodeFile(path string, opts ...Option) (*Prefetch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, opts...)
}
