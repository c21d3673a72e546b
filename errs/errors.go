// Package errs defines the sentinel errors shared across the scca
// packages.
//
// All errors are package-level sentinels so callers can classify
// failures with errors.Is regardless of how much context the decode
// path wrapped around them:
//
//	pf, err := scca.DecodeBuffer(data)
//	if errors.Is(err, errs.ErrUnsupportedVersion) {
//	    // skip this file, continue with the batch
//	}
//
// Every error is fatal for the file being decoded and recoverable for
// the batch: a caller iterating many prefetch files should log the
// failure and move on.
package errs

import "errors"

var (
	// ErrUnsupportedVersion indicates the header version field is not one
	// of the known prefetch format versions (17, 23, 30, 31).
	ErrUnsupportedVersion = errors.New("unsupported prefetch version")

	// ErrTruncated indicates a read required more bytes than remain in
	// the buffer: a truncated file, or an offset/count pointing outside
	// the decompressed content.
	ErrTruncated = errors.New("truncated or out-of-bounds prefetch data")

	// ErrDecompressionFailed indicates the file carried the compressed
	// envelope signature but the payload could not be decompressed.
	ErrDecompressionFailed = errors.New("envelope decompression failed")

	// ErrNoDecompressor indicates a compressed envelope was detected but
	// no Decompressor collaborator was provided to handle it.
	ErrNoDecompressor = errors.New("compressed envelope requires a decompressor")

	// ErrInvalidUTF16 indicates a filename in the metrics string region
	// is not valid UTF-16 (unpaired surrogate). Filenames are decoded
	// strictly; only the executable name in the outer header is decoded
	// leniently.
	ErrInvalidUTF16 = errors.New("invalid UTF-16 filename string")

	// ErrInvalidCodec indicates an unknown record sink compression type.
	ErrInvalidCodec = errors.New("invalid sink compression type")

	// ErrInvalidFormat indicates an unknown record output format.
	ErrInvalidFormat = errors.New("invalid record output format")
)
