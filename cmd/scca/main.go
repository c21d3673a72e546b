// Command scca decodes a directory of Windows Prefetch files and
// emits one record stream on stdout or to a file.
//
// Usage:
//
//	scca [flags] <directory>
//
// By default every prefetch file expands to one record per referenced
// file and run timestamp; --compact emits a single record per prefetch
// file instead. Records are JSON lines or a CBOR sequence, optionally
// compressed with zstd, s2 or lz4.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/forensicarts/scca/batch"
	"github.com/forensicarts/scca/compress"
	"github.com/forensicarts/scca/record"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scca: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		compact bool
		dedupe  bool
		verbose bool
		jobs    int
		output  string
		format  string
		codec   string
	)

	flags := pflag.NewFlagSet("scca", pflag.ContinueOnError)
	flags.BoolVar(&compact, "compact", false, "emit one compact record per prefetch file")
	flags.BoolVar(&dedupe, "dedupe", false, "skip byte-identical prefetch files")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log per-file details")
	flags.IntVarP(&jobs, "jobs", "j", 0, "decode workers (0 = one per CPU)")
	flags.StringVarP(&output, "output", "o", "-", "output path (\"-\" for stdout)")
	flags.StringVar(&format, "format", "json", "record format: json or cbor")
	flags.StringVar(&codec, "codec", "none", "output compression: none, zstd, s2 or lz4")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: scca [flags] <directory>\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one directory argument")
	}
	dir := flags.Arg(0)

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	recFormat, err := record.ParseFormat(format)
	if err != nil {
		return err
	}
	sinkCodec, err := compress.ParseType(codec)
	if err != nil {
		return err
	}

	runnerOpts := []batch.Option{
		batch.WithLogger(logger),
		batch.WithDedupe(dedupe),
	}
	if jobs > 0 {
		runnerOpts = append(runnerOpts, batch.WithWorkers(jobs))
	}

	runner, err := batch.NewRunner(runnerOpts...)
	if err != nil {
		return err
	}

	results, err := runner.Run(context.Background(), os.DirFS(dir))
	if err != nil {
		return err
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	sink, err := compress.NewWriter(sinkCodec, out)
	if err != nil {
		return err
	}

	encoder, err := record.NewEncoder(recFormat, sink)
	if err != nil {
		return err
	}

	var decoded, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue // already logged by the runner
		}
		decoded++

		if compact {
			if err := encoder.Encode(record.Compact(res.Prefetch, res.Path)); err != nil {
				return err
			}
			continue
		}

		for _, rec := range record.Expand(res.Prefetch, res.Path) {
			if err := encoder.Encode(rec); err != nil {
				return err
			}
		}
	}

	if err := sink.Close(); err != nil {
		return err
	}

	logger.Info("batch complete", "decoded", decoded, "failed", failed)

	return nil
}
