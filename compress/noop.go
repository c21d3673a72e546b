package compress

import "io"

// nopWriteCloser passes writes through unchanged. Close is a no-op so
// the underlying sink stays open, matching the compressed variants.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
