package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Writer wraps w in an LZ4 frame stream.
func newLZ4Writer(w io.Writer) io.WriteCloser {
	return lz4.NewWriter(w)
}
