package scca_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	scca "github.com/forensicarts/scca"
	"github.com/forensicarts/scca/endian"
	"github.com/forensicarts/scca/envelope"
	"github.com/forensicarts/scca/errs"
	"github.com/forensicarts/scca/internal/testutil"
	"github.com/forensicarts/scca/layout"
	"github.com/forensicarts/scca/wintime"
)

// ticks2021 is 2021-01-01T00:00:00Z in Windows FILETIME ticks.
const ticks2021 = uint64(13_253_932_800) * 10_000_000

func TestDecodeBuffer_Versions(t *testing.T) {
	names := []string{"A.DLL", "B.DLL", "A.DLL"} // duplicates are preserved

	tests := []struct {
		version      layout.Version
		lastRun      uint64
		remains      []uint64
		wantPrevious []time.Time
		wantNTFSRef  bool
	}{
		{
			version: layout.Version17,
			lastRun: 0x12345678, // 32-bit field in this version
			remains: []uint64{ticks2021},
		},
		{
			version:      layout.Version23,
			lastRun:      ticks2021 + 50,
			remains:      []uint64{ticks2021 + 40, 0},
			wantPrevious: []time.Time{wintime.FromTicks(ticks2021 + 40)},
			wantNTFSRef:  true,
		},
		{
			version:      layout.Version30,
			lastRun:      ticks2021 + 50,
			remains:      []uint64{ticks2021 + 40, 0, ticks2021 + 20},
			wantPrevious: []time.Time{wintime.FromTicks(ticks2021 + 40), wintime.FromTicks(ticks2021 + 20)},
			wantNTFSRef:  true,
		},
		{
			version:      layout.Version31,
			lastRun:      ticks2021 + 50,
			remains:      []uint64{ticks2021 + 40},
			wantPrevious: []time.Time{wintime.FromTicks(ticks2021 + 40)},
			wantNTFSRef:  true,
		},
	}

	for _, tt := range tests {
		t.Run("Version "+tt.version.String(), func(t *testing.T) {
			data := testutil.File{
				Version:        tt.version,
				ExecutableName: "SVCHOST.EXE",
				RunCount:       12,
				LastRunTicks:   tt.lastRun,
				RemainTicks:    tt.remains,
				Names:          names,
			}.Build()

			pf, err := scca.DecodeBuffer(data)
			require.NoError(t, err)

			require.Equal(t, tt.version, pf.Version)
			require.Equal(t, "SVCHOST.EXE", pf.ExecutableName)
			require.Equal(t, uint32(12), pf.RunCount)
			require.Equal(t, wintime.FromTicks(tt.lastRun), pf.LastRunTime)
			require.Equal(t, tt.wantPrevious, pf.PreviousRunTimes)
			require.Equal(t, names, pf.FileNames)

			require.Len(t, pf.Metrics, len(names))
			for _, m := range pf.Metrics {
				if tt.wantNTFSRef {
					require.NotZero(t, m.NTFSReference)
				} else {
					require.Zero(t, m.NTFSReference)
				}
			}
		})
	}
}

func TestDecodeBuffer_Version17Scenario(t *testing.T) {
	// Version 17 has no previous-run array: the list is empty no matter
	// what the buffer holds elsewhere.
	const ticks = uint64(0x0089ABCD)

	data := testutil.File{
		Version:        layout.Version17,
		ExecutableName: "CMD.EXE",
		RunCount:       5,
		LastRunTicks:   ticks,
		RemainTicks:    []uint64{ticks2021, ticks2021}, // ignored by the layout
		Names:          []string{"A.DLL", "B.DLL"},
	}.Build()

	pf, err := scca.DecodeBuffer(data)
	require.NoError(t, err)

	require.Equal(t, uint32(5), pf.RunCount)
	require.Equal(t, wintime.FromTicks(ticks), pf.LastRunTime)
	require.Empty(t, pf.PreviousRunTimes)
	require.Equal(t, []string{"A.DLL", "B.DLL"}, pf.FileNames)
}

func TestDecodeBuffer_Version30Slots(t *testing.T) {
	// Slots 0 and 1 set, slots 2-6 zero: exactly two previous runs, in
	// slot order, and no epoch-start timestamps from the zero sentinels.
	data := testutil.File{
		Version:      layout.Version30,
		RunCount:     1,
		LastRunTicks: ticks2021 + 100,
		RemainTicks:  []uint64{ticks2021 + 90, ticks2021 + 80, 0, 0, 0, 0, 0},
		Names:        []string{"X.DLL"},
	}.Build()

	pf, err := scca.DecodeBuffer(data)
	require.NoError(t, err)

	require.Equal(t, []time.Time{
		wintime.FromTicks(ticks2021 + 90),
		wintime.FromTicks(ticks2021 + 80),
	}, pf.PreviousRunTimes)
}

func TestDecodeBuffer_UnsupportedVersion(t *testing.T) {
	data := testutil.File{Version: layout.Version23, Names: []string{"A.DLL"}}.Build()
	endian.Engine().PutUint32(data[0:4], 26)

	pf, err := scca.DecodeBuffer(data)

	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	require.Nil(t, pf)
}

func TestDecodeBuffer_PermissiveSignature(t *testing.T) {
	data := testutil.File{
		Version:   layout.Version23,
		Signature: [4]byte{'A', 'C', 'C', 'S'},
		Names:     []string{"A.DLL"},
	}.Build()

	pf, err := scca.DecodeBuffer(data)

	require.NoError(t, err)
	require.Equal(t, [4]byte{'A', 'C', 'C', 'S'}, pf.Header.Signature)
}

func TestDecodeBuffer_Truncated(t *testing.T) {
	full := testutil.File{
		Version:      layout.Version23,
		RunCount:     2,
		LastRunTicks: ticks2021,
		Names:        []string{"A.DLL", "B.DLL", "C.DLL"},
	}.Build()

	lay, _ := layout.Lookup(layout.Version23)
	metricsOffset := layout.HeaderSize + lay.Info.Size

	tests := []struct {
		name string
		data []byte
	}{
		{"Empty buffer", nil},
		{"Mid outer header", full[:50]},
		{"Mid file information", full[:layout.HeaderSize+10]},
		{"Mid metrics array", full[:metricsOffset+lay.Metrics.Size+7]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := scca.DecodeBuffer(tt.data)

			require.ErrorIs(t, err, errs.ErrTruncated)
			require.Nil(t, pf, "no partial result on truncation")
		})
	}
}

func TestDecodeBuffer_FilenameOutOfBounds(t *testing.T) {
	data := testutil.File{
		Version: layout.Version30,
		Names:   []string{"A.DLL"},
	}.Build()

	lay, _ := layout.Lookup(layout.Version30)
	// Character count of the first metrics entry (wide shape: offset 16
	// within the entry).
	charsAt := layout.HeaderSize + lay.Info.Size + 16
	endian.Engine().PutUint32(data[charsAt:], 1<<24)

	_, err := scca.DecodeBuffer(data)

	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecodeBuffer_StrictFilenameDecoding(t *testing.T) {
	data := testutil.File{
		Version: layout.Version23,
		Names:   []string{"AB"},
	}.Build()

	lay, _ := layout.Lookup(layout.Version23)
	stringsOffset := layout.HeaderSize + lay.Info.Size + lay.Metrics.Size
	// Overwrite the first code unit with a lone low surrogate.
	endian.Engine().PutUint16(data[stringsOffset:], 0xDC00)

	_, err := scca.DecodeBuffer(data)

	require.ErrorIs(t, err, errs.ErrInvalidUTF16)
}

func TestDecode_CompressedEnvelope(t *testing.T) {
	raw := testutil.File{
		Version:        layout.Version23,
		ExecutableName: "EXPLORER.EXE",
		RunCount:       9,
		LastRunTicks:   ticks2021,
		RemainTicks:    []uint64{ticks2021 - 10, 0},
		Names:          []string{"A.DLL", "B.DLL"},
	}.Build()

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	dec := envelope.DecompressorFunc(func(data []byte) ([]byte, error) {
		require.Equal(t, payload, data)
		return raw, nil
	})

	direct, err := scca.DecodeBuffer(raw)
	require.NoError(t, err)

	wrapped, err := scca.Decode(
		bytes.NewReader(testutil.Envelope(payload, uint32(len(raw)))),
		scca.WithDecompressor(dec),
	)
	require.NoError(t, err)

	// The envelope must be transparent: identical result either way.
	require.Equal(t, direct, wrapped)
}

func TestDecode_RawSkipsDecompressor(t *testing.T) {
	raw := testutil.File{Version: layout.Version17, Names: []string{"A.DLL"}}.Build()

	dec := envelope.DecompressorFunc(func([]byte) ([]byte, error) {
		t.Fatal("decompressor must not run for raw content")
		return nil, nil
	})

	_, err := scca.Decode(bytes.NewReader(raw), scca.WithDecompressor(dec))

	require.NoError(t, err)
}

func TestDecode_CompressedWithoutDecompressor(t *testing.T) {
	_, err := scca.Decode(bytes.NewReader(testutil.Envelope([]byte{1}, 8)))

	require.ErrorIs(t, err, errs.ErrNoDecompressor)
}

func TestDecodeFile(t *testing.T) {
	data := testutil.File{
		Version:        layout.Version31,
		ExecutableName: "WINWORD.EXE",
		RunCount:       3,
		LastRunTicks:   ticks2021,
		Names:          []string{"A.DLL"},
	}.Build()

	path := filepath.Join(t.TempDir(), "WINWORD.EXE-12345678.pf")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	pf, err := scca.DecodeFile(path)

	require.NoError(t, err)
	require.Equal(t, "WINWORD.EXE", pf.ExecutableName)

	_, err = scca.DecodeFile(filepath.Join(t.TempDir(), "missing.pf"))
	require.Error(t, err)
}

func TestPrefetch_RunTimes(t *testing.T) {
	pf := &scca.Prefetch{
		LastRunTime: wintime.FromTicks(ticks2021 + 10),
		PreviousRunTimes: []time.Time{
			wintime.FromTicks(ticks2021 + 5),
			wintime.FromTicks(ticks2021),
		},
	}

	require.Equal(t, []time.Time{
		wintime.FromTicks(ticks2021 + 10),
		wintime.FromTicks(ticks2021 + 5),
		wintime.FromTicks(ticks2021),
	}, pf.RunTimes())
}
