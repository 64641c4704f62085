// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"seqsleuth-core/extract"
	"seqsleuth-core/fastq"
	"seqsleuth-core/seqtech"

	"seqsleuth/internal/bammeta"
	"seqsleuth/internal/filelist"
	"seqsleuth/internal/keywords"
	"seqsleuth/internal/report"
	"seqsleuth/internal/vcfmeta"
)

// Config controls the per-file fan-out.
type Config struct {
	Workers          int // number of worker goroutines (>=1)
	NumReads         int // reads sampled per FASTQ file; -1 = all
	ReadNameFallback bool
	Logger           *slog.Logger
}

// ForEachReport processes independent files concurrently and streams one
// report per file to visit (serially, in completion order). Each worker owns
// its grammar instance for the duration of one file, so no extraction state
// crosses file boundaries. Per-file failures are recorded in the report row;
// only visit errors and cancellation abort the run.
func ForEachReport(
	ctx context.Context,
	cfg Config,
	entries []filelist.Entry,
	visit func(report.Report) error,
) error {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	jobs := make(chan filelist.Entry, cfg.Workers*2)
	results := make(chan report.Report, cfg.Workers*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case e, ok := <-jobs:
					if !ok {
						return
					}
					r := processEntry(cfg, log, e)
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if err := visit(r); err != nil {
				cerr = err
			}
		}
	}()

	// Feed work
feed:
	for _, e := range entries {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- e:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

// processEntry runs the whole classify→create→extract→aggregate pipeline for
// one file, plus path-keyword matching. It never fails: extraction problems
// land in the report's metadata under "error".
func processEntry(cfg Config, log *slog.Logger, e filelist.Entry) report.Report {
	log.Debug("processing file", "type", e.FileType, "path", e.Path)

	r := report.Report{Filename: e.Filename, FileType: e.FileType}

	switch e.FileType {
	case filelist.TypeBAM:
		r.Tech = seqtech.FromFilename(e.Path)
		r.Keywords = keywords.NewExtractor(keywords.BAM()).Extract(e.Path)
		meta, err := bammeta.Extract(e.Path)
		if err != nil {
			log.Warn("bam metadata extraction failed", "path", e.Path, "err", err)
			meta = map[string]any{"error": err.Error()}
		}
		r.Metadata = extract.FileMetadata(meta)

	case filelist.TypeVCF:
		r.Tech = seqtech.FromFilename(e.Path)
		r.Keywords = keywords.NewExtractor(keywords.VCF()).Extract(e.Path)
		meta, err := vcfmeta.Extract(e.Path)
		if err != nil {
			log.Warn("vcf metadata extraction failed", "path", e.Path, "err", err)
			meta = map[string]any{"error": err.Error()}
		}
		r.Metadata = extract.FileMetadata(meta)

	default: // fastq
		r.Keywords = keywords.NewExtractor(keywords.FASTQ()).Extract(e.Path)
		names, err := fastq.ReadNames(e.Path, cfg.NumReads)
		if err != nil {
			log.Warn("fastq read-name extraction failed", "path", e.Path, "err", err)
			r.Tech = seqtech.Unknown
			r.Metadata = extract.FileMetadata{"error": err.Error()}
			return r
		}
		tech := seqtech.FromFilename(e.Path)
		if tech == seqtech.Unknown && cfg.ReadNameFallback {
			tech = seqtech.FromReadNames(names)
		}
		r.Tech = tech

		g := seqtech.New(tech, log)
		r.Metadata = extract.Aggregate(extract.All(g, names, log))
	}

	log.Debug("file processed", "path", e.Path, "tech", r.Tech)
	return r
}
