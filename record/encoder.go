package record

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/forensicarts/scca/errs"
)

// Format selects the wire encoding of emitted records.
type Format uint8

const (
	FormatJSON Format = 1 // FormatJSON emits one JSON object per line.
	FormatCBOR Format = 2 // FormatCBOR emits a CBOR sequence.
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidFormat, s)
	}
}

// Encoder writes records to a stream.
type Encoder interface {
	Encode(v any) error
}

// NewEncoder creates a stream encoder for the given format.
func NewEncoder(f Format, w io.Writer) (Encoder, error) {
	switch f {
	case FormatJSON:
		return json.NewEncoder(w), nil
	case FormatCBOR:
		return cbor.NewEncoder(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidFormat, f)
	}
}
