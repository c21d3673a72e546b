package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	scca "github.com/forensicarts/scca"
	"github.com/forensicarts/scca/record"
)

func samplePrefetch() *scca.Prefetch {
	t0 := time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)

	return &scca.Prefetch{
		ExecutableName: "CMD.EXE",
		RunCount:       5,
		LastRunTime:    t0,
		PreviousRunTimes: []time.Time{
			t0.Add(-time.Hour),
			t0.Add(-2 * time.Hour),
		},
		FileNames: []string{"A.DLL", "B.DLL", "C.DLL"},
	}
}

func TestExpand(t *testing.T) {
	p := samplePrefetch()

	records := record.Expand(p, "prefetch/CMD.EXE-4A81B364.pf")

	// N referenced files x M run timestamps.
	require.Len(t, records, 3*3)

	runTimes := p.RunTimes()
	for i, rec := range records {
		require.Equal(t, p.FileNames[i/3], rec.LinkedFile, "record %d", i)
		require.Equal(t, runTimes[i%3], rec.TS, "record %d", i)
		require.Equal(t, "CMD.EXE", rec.FileName)
		require.Equal(t, "CMD.EXE-4A81B364.pf", rec.Prefetch)
		require.Equal(t, uint32(5), rec.RunCount)
	}
}

func TestExpand_SingleRunTime(t *testing.T) {
	p := samplePrefetch()
	p.PreviousRunTimes = nil // version 17 shape

	records := record.Expand(p, "CMD.EXE-4A81B364.pf")

	require.Len(t, records, 3)
	for _, rec := range records {
		require.Equal(t, p.LastRunTime, rec.TS)
	}
}

func TestExpand_NoReferencedFiles(t *testing.T) {
	p := samplePrefetch()
	p.FileNames = nil

	require.Empty(t, record.Expand(p, "CMD.EXE-4A81B364.pf"))
}

func TestCompact(t *testing.T) {
	p := samplePrefetch()

	rec := record.Compact(p, "prefetch/CMD.EXE-4A81B364.pf")

	require.Equal(t, p.LastRunTime, rec.TS)
	require.Equal(t, "CMD.EXE", rec.FileName)
	require.Equal(t, "CMD.EXE-4A81B364.pf", rec.Prefetch)
	require.Equal(t, p.FileNames, rec.LinkedFiles)
	require.Equal(t, uint32(5), rec.RunCount)
	require.Equal(t, p.PreviousRunTimes, rec.PreviousRuns)
}
