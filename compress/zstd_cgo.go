//go:build cgo_zstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdWriter wraps w in a Zstandard stream backed by libzstd.
// Selected with the cgo_zstd build tag; the default build uses the
// pure Go encoder.
func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return gozstd.NewWriterLevel(w, 3), nil
}
