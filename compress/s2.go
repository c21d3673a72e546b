package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// newS2Writer wraps w in an S2 stream. S2 favors throughput over
// ratio, a good default for large expanded-record streams.
func newS2Writer(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w)
}
