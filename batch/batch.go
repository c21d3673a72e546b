// Package batch decodes directories of prefetch files.
//
// Files are independent, so the runner fans them out across worker
// goroutines with no shared mutable state beyond the duplicate
// tracker. Every failure is per-file: a corrupt file is logged and
// recorded, never allowed to abort the batch.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	scca "github.com/forensicarts/scca"
	"github.com/forensicarts/scca/envelope"
	"github.com/forensicarts/scca/internal/hash"
	"github.com/forensicarts/scca/internal/options"
)

// Result pairs one prefetch file with its decode outcome. Exactly one
// of Prefetch and Err is set.
type Result struct {
	// Path is the file name within the scanned directory.
	Path string

	Prefetch *scca.Prefetch
	Err      error
}

// Runner decodes every *.pf file in a directory.
type Runner struct {
	decoder      *scca.Decoder
	decompressor envelope.Decompressor
	workers      int
	dedupe       bool
	logger       *slog.Logger
}

// Option configures a Runner.
type Option = options.Option[*Runner]

// WithWorkers sets the number of decode goroutines. Defaults to
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return options.New(func(r *Runner) error {
		if n < 1 {
			return fmt.Errorf("workers must be >= 1, got %d", n)
		}
		r.workers = n

		return nil
	})
}

// WithDedupe skips byte-identical files after the first occurrence,
// keyed by an xxHash64 of the raw content. Useful when a directory
// mixes live prefetch files with volume shadow copies.
func WithDedupe(enabled bool) Option {
	return options.NoError(func(r *Runner) {
		r.dedupe = enabled
	})
}

// WithLogger sets the structured logger for per-file failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(r *Runner) {
		r.logger = logger
	})
}

// WithDecompressor injects the LZXPRESS-Huffman collaborator passed
// through to the decoder for compressed envelopes.
func WithDecompressor(dec envelope.Decompressor) Option {
	return options.NoError(func(r *Runner) {
		r.decompressor = dec
	})
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
	}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	var err error
	r.decoder, err = scca.NewDecoder(scca.WithDecompressor(r.decompressor))
	if err != nil {
		return nil, err
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r, nil
}

// Run decodes every prefetch file at the root of fsys and returns the
// per-file outcomes sorted by path.
//
// Matching is by case-insensitive ".pf" extension; other entries and
// subdirectories are ignored. Failed files carry their error in the
// Result and are logged at warn level; they never abort the run. The
// only non-nil error Run itself returns is a directory listing failure
// or a canceled context.
func (r *Runner) Run(ctx context.Context, fsys fs.FS) ([]Result, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list prefetch directory: %w", err)
	}

	paths := make(chan string)
	results := make(chan Result)

	var seen sync.Map // xxHash64 content ID -> struct{}

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				if res, ok := r.decodeOne(fsys, path, &seen); ok {
					results <- res
				}
			}
		}()
	}

	go func() {
		defer close(paths)
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pf") {
				continue
			}
			select {
			case paths <- entry.Name():
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]Result, 0, len(entries))
	for res := range results {
		collected = append(collected, res)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Path < collected[j].Path
	})

	return collected, nil
}

// decodeOne decodes a single file. The returned bool is false when the
// file was skipped as a duplicate.
func (r *Runner) decodeOne(fsys fs.FS, path string, seen *sync.Map) (Result, bool) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		r.logger.Warn("failed to read prefetch file", "path", path, "error", err)
		return Result{Path: path, Err: err}, true
	}

	if r.dedupe {
		if _, dup := seen.LoadOrStore(hash.ID(data), struct{}{}); dup {
			r.logger.Debug("skipping duplicate prefetch file", "path", path)
			return Result{}, false
		}
	}

	pf, err := r.decoder.DecodeBytes(data)
	if err != nil {
		r.logger.Warn("failed to parse prefetch file", "path", path, "error", err)
		return Result{Path: path, Err: err}, true
	}

	return Result{Path: path, Prefetch: pf}, true
}
