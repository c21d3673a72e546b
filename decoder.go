package scca

import (
	"fmt"
	"io"

	"github.com/forensicarts/scca/envelope"
	"github.com/forensicarts/scca/errs"
	"github.com/forensicarts/scca/internal/options"
	"github.com/forensicarts/scca/layout"
	"github.com/forensicarts/scca/wintime"
)

// Decoder decodes Windows Prefetch files.
//
// The zero value decodes raw (uncompressed) files; decoding files
// wrapped in the compressed envelope additionally requires a
// Decompressor collaborator, injected with WithDecompressor.
//
// A Decoder holds no per-file state and is safe for concurrent use:
// one Decoder may serve many goroutines each decoding their own file.
type Decoder struct {
	decompressor envelope.Decompressor
}

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithDecompressor injects the LZXPRESS-Huffman collaborator used to
// unwrap compressed envelopes. Without it, compressed files fail with
// errs.ErrNoDecompressor.
func WithDecompressor(dec envelope.Decompressor) Option {
	return options.NoError(func(d *Decoder) {
		d.decompressor = dec
	})
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode reads r to the end, unwraps the compressed envelope when
// present, and decodes the content.
func (d *Decoder) Decode(r io.Reader) (*Prefetch, error) {
	data, err := envelope.Materialize(r, d.decompressor)
	if err != nil {
		return nil, err
	}

	return d.DecodeBuffer(data)
}

// DecodeBytes decodes one prefetch file from an in-memory byte slice,
// unwrapping the compressed envelope when present.
func (d *Decoder) DecodeBytes(data []byte) (*Prefetch, error) {
	content, err := envelope.Unwrap(data, d.decompressor)
	if err != nil {
		return nil, err
	}

	return d.DecodeBuffer(content)
}

// DecodeBuffer decodes raw prefetch content from an in-memory buffer.
// The buffer must already be decompressed; compressed envelopes are
// handled by Decode.
//
// Decoding is a single pass of random-access reads against data. The
// returned Prefetch does not alias data; all strings and slices are
// freshly allocated, so the caller may reuse the buffer afterwards.
//
// Failures are classified by the sentinels in the errs package:
// ErrUnsupportedVersion for an unknown version field, ErrTruncated for
// any offset or count that falls outside the buffer, ErrInvalidUTF16
// for a malformed metrics filename.
func (d *Decoder) DecodeBuffer(data []byte) (*Prefetch, error) {
	hdrBytes, err := readAt(data, 0, layout.HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("outer header: %w", err)
	}

	var hdr layout.Header
	if err := hdr.Parse(hdrBytes); err != nil {
		return nil, fmt.Errorf("outer header: %w", err)
	}

	version := layout.Version(hdr.Version)
	lay, ok := layout.Lookup(version)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedVersion, version)
	}

	infoBytes, err := readAt(data, layout.HeaderSize, uint64(lay.Info.Size))
	if err != nil {
		return nil, fmt.Errorf("file information (version %s): %w", version, err)
	}

	var info layout.FileInformation
	if err := info.Parse(infoBytes, lay.Info); err != nil {
		return nil, fmt.Errorf("file information (version %s): %w", version, err)
	}

	metrics, names, err := decodeMetrics(data, &info, lay.Metrics)
	if err != nil {
		return nil, err
	}

	p := &Prefetch{
		Version:        version,
		Header:         hdr,
		Info:           info,
		ExecutableName: hdr.ExecutableName(),
		RunCount:       info.RunCount,
		LastRunTime:    wintime.FromTicks(info.LastRunTime),
		Metrics:        metrics,
		FileNames:      names,
	}

	// Zero slots are "unused", never 1601-01-01 timestamps. Version 17
	// has no slot array and always yields an empty list.
	for _, ticks := range info.LastRunRemains {
		if ticks != 0 {
			p.PreviousRunTimes = append(p.PreviousRunTimes, wintime.FromTicks(ticks))
		}
	}

	return p, nil
}

// decodeMetrics reads the file-metrics array and resolves each entry's
// filename from the filename-strings region. The whole array extent is
// bounds-checked before any entry is parsed, so a buffer truncated
// mid-array fails instead of yielding a partial list.
func decodeMetrics(data []byte, info *layout.FileInformation, l layout.MetricsLayout) ([]layout.MetricsEntry, []string, error) {
	count := int(info.MetricsEntryCount)

	array, err := readAt(data, uint64(info.MetricsArrayOffset), uint64(count)*uint64(l.Size))
	if err != nil {
		return nil, nil, fmt.Errorf("metrics array (%d entries): %w", count, err)
	}

	metrics := make([]layout.MetricsEntry, count)
	names := make([]string, count)

	for i := range metrics {
		if err := metrics[i].Parse(array[i*l.Size:], l); err != nil {
			return nil, nil, fmt.Errorf("metrics entry %d: %w", i, err)
		}

		// Filename offsets are relative to the strings region; lengths
		// are UTF-16 code units. Resolution is a pure random-access
		// read, so it cannot disturb iteration over the array.
		offset := uint64(info.FilenameStringsOffset) + uint64(metrics[i].FilenameStringOffset)
		raw, err := readAt(data, offset, uint64(metrics[i].FilenameStringChars)*2)
		if err != nil {
			return nil, nil, fmt.Errorf("filename of metrics entry %d: %w", i, err)
		}

		names[i], err = layout.DecodeUTF16(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("filename of metrics entry %d: %w", i, err)
		}
	}

	return metrics, names, nil
}

// readAt returns the length bytes at offset, failing with ErrTruncated
// when the range falls outside the buffer. It never mutates shared
// cursor state.
func readAt(data []byte, offset, length uint64) ([]byte, error) {
	end := offset + length
	if end < offset || end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: need bytes [%d, %d), have %d", errs.ErrTruncated, offset, end, len(data))
	}

	return data[offset:end:end], nil
}
