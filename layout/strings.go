package layout

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/forensicarts/scca/endian"
	"github.com/forensicarts/scca/errs"
)

// DecodeUTF16 decodes a little-endian UTF-16 byte slice strictly: an
// odd byte count or an unpaired surrogate fails with ErrInvalidUTF16.
// Metrics filenames use this path; the outer header name does not.
func DecodeUTF16(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("%w: odd byte count %d", errs.ErrInvalidUTF16, len(data))
	}

	units := decodeUnits(data)
	for i := 0; i < len(units); i++ {
		c := units[i]
		switch {
		case c >= 0xD800 && c < 0xDC00:
			// High surrogate must be followed by a low surrogate.
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", fmt.Errorf("%w: unpaired high surrogate at code unit %d", errs.ErrInvalidUTF16, i)
			}
			i++
		case c >= 0xDC00 && c < 0xE000:
			return "", fmt.Errorf("%w: unpaired low surrogate at code unit %d", errs.ErrInvalidUTF16, i)
		}
	}

	return string(utf16.Decode(units)), nil
}

// DecodeUTF16Lossy decodes a little-endian UTF-16 byte slice leniently:
// a trailing odd byte is dropped, unpaired surrogates become U+FFFD,
// and the result is truncated at the first NUL. Used for the
// executable name buffer, which is NUL padded and occasionally carries
// garbage past the terminator.
func DecodeUTF16Lossy(data []byte) string {
	units := decodeUnits(data[:len(data)&^1])
	s := string(utf16.Decode(units))

	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	return s
}

func decodeUnits(data []byte) []uint16 {
	engine := endian.Engine()

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = engine.Uint16(data[i*2 : i*2+2])
	}

	return units
}
