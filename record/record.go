// Package record projects decoded prefetch files into the two output
// shapes consumed by downstream tooling.
//
// The expanded shape yields one record per (referenced file × run
// timestamp) pair; the compact shape yields a single record per
// prefetch file carrying the full file list and full timestamp list.
// Both shapes carry the executable short name, the prefetch entry name
// (derived from the source file's own name, never from file content)
// and the run count.
package record

import (
	"path"
	"time"

	scca "github.com/forensicarts/scca"
)

// Record is the expanded output shape: one referenced file at one run
// timestamp.
type Record struct {
	TS         time.Time `json:"ts" cbor:"ts"`
	FileName   string    `json:"filename" cbor:"filename"`
	Prefetch   string    `json:"prefetch" cbor:"prefetch"`
	LinkedFile string    `json:"linkedfile" cbor:"linkedfile"`
	RunCount   uint32    `json:"runcount" cbor:"runcount"`
}

// CompactRecord is the compact output shape: one record per prefetch
// file, carrying every referenced file and every run timestamp.
type CompactRecord struct {
	TS           time.Time   `json:"ts" cbor:"ts"`
	FileName     string      `json:"filename" cbor:"filename"`
	Prefetch     string      `json:"prefetch" cbor:"prefetch"`
	LinkedFiles  []string    `json:"linkedfiles" cbor:"linkedfiles"`
	RunCount     uint32      `json:"runcount" cbor:"runcount"`
	PreviousRuns []time.Time `json:"previousruns" cbor:"previousruns"`
}

// Expand projects p into expanded records: the cross product of the
// referenced-file list and the run timestamps (latest first, then
// previous runs in slot order). Iteration is file-major, so the
// records for one referenced file are adjacent. A prefetch with N
// referenced files and M run timestamps expands to exactly N*M
// records.
//
// source is the prefetch file's own path; only its base name is kept
// as the prefetch entry identifier.
func Expand(p *scca.Prefetch, source string) []Record {
	runTimes := p.RunTimes()
	entry := path.Base(source)

	records := make([]Record, 0, len(p.FileNames)*len(runTimes))
	for _, linked := range p.FileNames {
		for _, ts := range runTimes {
			records = append(records, Record{
				TS:         ts,
				FileName:   p.ExecutableName,
				Prefetch:   entry,
				LinkedFile: linked,
				RunCount:   p.RunCount,
			})
		}
	}

	return records
}

// Compact projects p into the compact shape. TS carries the latest run
// timestamp; PreviousRuns carries the remaining timestamps in slot
// order (empty for version 17).
func Compact(p *scca.Prefetch, source string) CompactRecord {
	return CompactRecord{
		TS:           p.LastRunTime,
		FileName:     p.ExecutableName,
		Prefetch:     path.Base(source),
		LinkedFiles:  p.FileNames,
		RunCount:     p.RunCount,
		PreviousRuns: p.PreviousRunTimes,
	}
}
