//go:build !cgo_zstd

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdWriter wraps w in a Zstandard stream using the pure Go
// encoder. Build with the cgo_zstd tag to use libzstd instead.
func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}
